package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApproveRescheduleCommandIsNotConstructed = errors.New(
	"ApproveRescheduleCommand must be created via NewApproveRescheduleCommand constructor",
)

// ApproveRescheduleCommand accepts a pending reschedule request and fixes the
// new handoff date. The trainer supplies the date explicitly rather than the
// system copying the requested one, so counter-proposals need no extra round
// trip.
type ApproveRescheduleCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor
	newDate    time.Time

	guard guard.ConstructorGuard
}

// NewApproveRescheduleCommand creates a command to approve a reschedule request.
func NewApproveRescheduleCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role, newDate time.Time,
) (ApproveRescheduleCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return ApproveRescheduleCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return ApproveRescheduleCommand{}, err
	}
	if newDate.IsZero() {
		return ApproveRescheduleCommand{}, errs.NewValueIsRequiredError("new scheduled date")
	}

	return ApproveRescheduleCommand{
		deliveryID: deliveryID,
		actor:      actor,
		newDate:    newDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveRescheduleCommand) Validate() error {
	return c.guard.Validate(ErrApproveRescheduleCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c ApproveRescheduleCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c ApproveRescheduleCommand) Actor() delivery.Actor {
	return c.actor
}

// NewDate returns the handoff date the delivery moves to.
func (c ApproveRescheduleCommand) NewDate() time.Time {
	return c.newDate
}
