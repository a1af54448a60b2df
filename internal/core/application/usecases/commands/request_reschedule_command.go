package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRequestRescheduleCommandIsNotConstructed = errors.New(
	"RequestRescheduleCommand must be created via NewRequestRescheduleCommand constructor",
)

// RequestRescheduleCommand opens a reschedule negotiation on behalf of the
// client. The proposed date is optional: a request with an unusable or missing
// date is still recorded so the trainer can follow up, which mirrors how
// free-text requests behaved before the negotiation was structured.
type RequestRescheduleCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	actor        delivery.Actor
	proposedDate *time.Time
	reason       string

	guard guard.ConstructorGuard
}

// NewRequestRescheduleCommand creates a command to request a reschedule.
func NewRequestRescheduleCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role, proposedDate *time.Time, reason string,
) (RequestRescheduleCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return RequestRescheduleCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return RequestRescheduleCommand{}, err
	}

	return RequestRescheduleCommand{
		deliveryID:   deliveryID,
		actor:        actor,
		proposedDate: proposedDate,
		reason:       reason,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRescheduleCommand) Validate() error {
	return c.guard.Validate(ErrRequestRescheduleCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c RequestRescheduleCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c RequestRescheduleCommand) Actor() delivery.Actor {
	return c.actor
}

// ProposedDate returns the date the client asked for, possibly nil.
func (c RequestRescheduleCommand) ProposedDate() *time.Time {
	return c.proposedDate
}

// Reason returns the client's explanation for the request.
func (c RequestRescheduleCommand) Reason() string {
	return c.reason
}
