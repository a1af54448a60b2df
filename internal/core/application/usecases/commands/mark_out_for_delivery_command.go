package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand declares the product is in transit to the client.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewMarkOutForDeliveryCommand creates a command to move a delivery in transit.
func NewMarkOutForDeliveryCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role,
) (MarkOutForDeliveryCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return MarkOutForDeliveryCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return MarkOutForDeliveryCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c MarkOutForDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c MarkOutForDeliveryCommand) Actor() delivery.Actor {
	return c.actor
}
