package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkScheduledCommandIsNotConstructed = errors.New(
	"MarkScheduledCommand must be created via NewMarkScheduledCommand constructor",
)

// MarkScheduledCommand fixes a handoff date agreed between the parties. Issued
// by the trainer once the delivery is ready.
type MarkScheduledCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	actor         delivery.Actor
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

// NewMarkScheduledCommand creates a command to schedule a delivery for a date.
func NewMarkScheduledCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role, scheduledDate time.Time,
) (MarkScheduledCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return MarkScheduledCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return MarkScheduledCommand{}, err
	}
	if scheduledDate.IsZero() {
		return MarkScheduledCommand{}, errs.NewValueIsRequiredError("scheduled date")
	}

	return MarkScheduledCommand{
		deliveryID:    deliveryID,
		actor:         actor,
		scheduledDate: scheduledDate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkScheduledCommand) Validate() error {
	return c.guard.Validate(ErrMarkScheduledCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c MarkScheduledCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c MarkScheduledCommand) Actor() delivery.Actor {
	return c.actor
}

// ScheduledDate returns the agreed handoff date.
func (c MarkScheduledCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}
