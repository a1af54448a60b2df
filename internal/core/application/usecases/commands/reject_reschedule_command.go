package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectRescheduleCommandIsNotConstructed = errors.New(
	"RejectRescheduleCommand must be created via NewRejectRescheduleCommand constructor",
)

// RejectRescheduleCommand declines a pending reschedule request. The delivery
// keeps its current status and date.
type RejectRescheduleCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewRejectRescheduleCommand creates a command to reject a reschedule request.
func NewRejectRescheduleCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role,
) (RejectRescheduleCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return RejectRescheduleCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return RejectRescheduleCommand{}, err
	}

	return RejectRescheduleCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectRescheduleCommand) Validate() error {
	return c.guard.Validate(ErrRejectRescheduleCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c RejectRescheduleCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c RejectRescheduleCommand) Actor() delivery.Actor {
	return c.actor
}
