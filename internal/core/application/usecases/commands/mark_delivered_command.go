package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand asserts the handoff happened. The delivery timestamp is
// taken at handling time, not supplied by the caller.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a delivery as handed off.
func NewMarkDeliveredCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role,
) (MarkDeliveredCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return MarkDeliveredCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return MarkDeliveredCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c MarkDeliveredCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c MarkDeliveredCommand) Actor() delivery.Actor {
	return c.actor
}
