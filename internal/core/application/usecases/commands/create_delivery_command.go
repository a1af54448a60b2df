package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand records a new product-delivery obligation in pending
// status. Invoked by the commerce collaborator when an order line item requiring
// physical fulfillment is recorded; the order back-references are optional because
// a delivery may exist without a formal order in edge cases.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	orderID     *kernel.UUID
	orderItemID *kernel.UUID
	trainerID   kernel.UUID
	clientID    kernel.UUID
	productID   *kernel.UUID
	productName string
	quantity    int
	method      delivery.Method

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to record a new delivery obligation.
// Trainer, client, product name, a positive quantity and a valid delivery method
// are required; order and product references may be nil.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	orderID *kernel.UUID,
	orderItemID *kernel.UUID,
	trainerID kernel.UUID,
	clientID kernel.UUID,
	productID *kernel.UUID,
	productName string,
	quantity int,
	method delivery.Method,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		orderID:     orderID,
		orderItemID: orderItemID,
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		method:      method,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setParties(trainerID, clientID),
		cmd.validateOptionalRefs(),
		cmd.validateProduct(),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new record.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the owning order reference, possibly nil.
func (c CreateDeliveryCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// OrderItemID returns the owning line item reference, possibly nil.
func (c CreateDeliveryCommand) OrderItemID() *kernel.UUID {
	return c.orderItemID
}

// TrainerID returns the trainer party.
func (c CreateDeliveryCommand) TrainerID() kernel.UUID {
	return c.trainerID
}

// ClientID returns the client party.
func (c CreateDeliveryCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProductID returns the catalog product reference, possibly nil.
func (c CreateDeliveryCommand) ProductID() *kernel.UUID {
	return c.productID
}

// ProductName returns the human-readable name of what is owed.
func (c CreateDeliveryCommand) ProductName() string {
	return c.productName
}

// Quantity returns how many units are owed.
func (c CreateDeliveryCommand) Quantity() int {
	return c.quantity
}

// Method returns the delivery method.
func (c CreateDeliveryCommand) Method() delivery.Method {
	return c.method
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setParties(trainerID, clientID kernel.UUID) error {
	if err := trainerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("trainer ID", err)
	}
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client ID", err)
	}
	c.trainerID = trainerID
	c.clientID = clientID
	return nil
}

func (c *CreateDeliveryCommand) validateOptionalRefs() error {
	// An order back-reference comes whole or not at all.
	if (c.orderID == nil) != (c.orderItemID == nil) {
		return errs.NewValueIsInvalidError("order reference requires both order ID and order item ID")
	}
	if c.orderID != nil {
		if err := errors.Join(c.orderID.Validate(), c.orderItemID.Validate()); err != nil {
			return err
		}
	}
	if c.productID != nil {
		if err := c.productID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *CreateDeliveryCommand) validateProduct() error {
	if c.productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if c.quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}
	return c.method.Validate()
}
