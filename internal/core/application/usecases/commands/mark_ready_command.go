package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand declares that the product is prepared and available for
// handoff. Only the owning trainer may issue it, and only from pending status.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to move a delivery to ready status.
func NewMarkReadyCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role,
) (MarkReadyCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return MarkReadyCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return MarkReadyCommand{}, err
	}

	return MarkReadyCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c MarkReadyCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c MarkReadyCommand) Actor() delivery.Actor {
	return c.actor
}
