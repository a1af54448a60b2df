package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand is the client's acknowledgement that the product
// arrived. Confirmation closes the lifecycle.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm receipt of a delivery.
func NewConfirmReceiptCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role,
) (ConfirmReceiptCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return ConfirmReceiptCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return ConfirmReceiptCommand{
		deliveryID: deliveryID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c ConfirmReceiptCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c ConfirmReceiptCommand) Actor() delivery.Actor {
	return c.actor
}
