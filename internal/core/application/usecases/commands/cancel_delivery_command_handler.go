package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler handles cancellation from any non-terminal status.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *CancelDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CancelDeliveryCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.Cancel(cmd.Actor(), cmd.Reason())
	})
}
