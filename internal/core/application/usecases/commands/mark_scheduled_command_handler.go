package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// MarkScheduledCommandHandler handles the ready -> scheduled transition.
type MarkScheduledCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkScheduledCommandHandler creates a handler for scheduling deliveries.
func NewMarkScheduledCommandHandler(uowFactory DeliveryUoWFactory) MarkScheduledCommandHandler {
	return MarkScheduledCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *MarkScheduledCommandHandler) Handle(
	ctx context.Context, cmd MarkScheduledCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.MarkScheduled(cmd.Actor(), cmd.ScheduledDate())
	})
}
