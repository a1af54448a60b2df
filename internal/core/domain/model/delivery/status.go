package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery record.
//
// State transitions (happy path plus exits):
//
//	pending ──> ready ──> scheduled ──> out_for_delivery ──> delivered ──> confirmed
//	   │          │           │                │                 │
//	   └──────────┴───────────┴────────────────┴─────────────────┴──> disputed
//	   └──────────┴───────────┴──────────────────────────────────────> cancelled
//
// disputed and cancelled are reachable from every non-terminal state; confirmed and
// cancelled are terminal. The allowed transitions per operation and actor are defined
// in the transition table (see transitions.go), which is the single authority for
// both documentation and enforcement.
type Status string

const (
	// StatusPending is the initial state: the product is owed but not yet prepared.
	StatusPending Status = "pending"

	// StatusReady indicates the trainer has the product prepared for hand-off.
	StatusReady Status = "ready"

	// StatusScheduled indicates a target hand-off date has been agreed.
	StatusScheduled Status = "scheduled"

	// StatusOutForDelivery indicates the product is in transit to the client.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered indicates the hand-off happened; awaiting client confirmation.
	StatusDelivered Status = "delivered"

	// StatusConfirmed indicates the client acknowledged receipt. Terminal.
	StatusConfirmed Status = "confirmed"

	// StatusDisputed indicates the client reported a problem with the delivery.
	StatusDisputed Status = "disputed"

	// StatusCancelled indicates the obligation was abandoned. Terminal.
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:        {},
		StatusReady:          {},
		StatusScheduled:      {},
		StatusOutForDelivery: {},
		StatusDelivered:      {},
		StatusConfirmed:      {},
		StatusDisputed:       {},
		StatusCancelled:      {},
	}
}

// Validate checks that the status is one of the eight enumerated values.
// Used when reconstructing records from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted from this status.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// AllowsReschedule reports whether a pending reschedule request may exist in this
// status. Requests only make sense before the product leaves the trainer's hands.
func (s Status) AllowsReschedule() bool {
	return s == StatusPending || s == StatusReady || s == StatusScheduled
}
