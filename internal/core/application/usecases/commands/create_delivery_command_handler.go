package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for recording a new
// delivery obligation. The record starts in pending status and is mutated only
// through the transition commands afterwards.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the persisted record.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	record, err := delivery.NewDeliveryRecord(
		cmd.DeliveryID(),
		cmd.TrainerID(),
		cmd.ClientID(),
		cmd.ProductName(),
		cmd.Quantity(),
		cmd.Method(),
	)
	if err != nil {
		return nil, err
	}

	if cmd.OrderID() != nil {
		if err = record.AttachOrder(*cmd.OrderID(), *cmd.OrderItemID()); err != nil {
			return nil, err
		}
	}
	if cmd.ProductID() != nil {
		if err = record.AttachProduct(*cmd.ProductID()); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
