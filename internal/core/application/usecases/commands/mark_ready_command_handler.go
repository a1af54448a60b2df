package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// MarkReadyCommandHandler handles the pending -> ready transition.
type MarkReadyCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkReadyCommandHandler creates a handler for marking deliveries ready.
func NewMarkReadyCommandHandler(uowFactory DeliveryUoWFactory) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *MarkReadyCommandHandler) Handle(
	ctx context.Context, cmd MarkReadyCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.MarkReady(cmd.Actor())
	})
}
