package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// MarkOutForDeliveryCommandHandler handles the scheduled -> out_for_delivery transition.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkOutForDeliveryCommandHandler creates a handler for in-transit marking.
func NewMarkOutForDeliveryCommandHandler(uowFactory DeliveryUoWFactory) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *MarkOutForDeliveryCommandHandler) Handle(
	ctx context.Context, cmd MarkOutForDeliveryCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.MarkOutForDelivery(cmd.Actor())
	})
}
