package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand abandons a delivery that has not reached a terminal
// status. Either party may cancel; the reason is kept for the audit trail.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor
	reason     string

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a command to cancel a delivery.
func NewCancelDeliveryCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role, reason string,
) (CancelDeliveryCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return CancelDeliveryCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}
	if reason == "" {
		return CancelDeliveryCommand{}, errs.NewValueIsRequiredError("cancel reason")
	}

	return CancelDeliveryCommand{
		deliveryID: deliveryID,
		actor:      actor,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c CancelDeliveryCommand) Actor() delivery.Actor {
	return c.actor
}

// Reason returns the cancellation reason.
func (c CancelDeliveryCommand) Reason() string {
	return c.reason
}
