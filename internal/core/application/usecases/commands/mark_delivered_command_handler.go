package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
)

// MarkDeliveredCommandHandler handles the transition into delivered status and
// stamps the handoff time.
type MarkDeliveredCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery handoff.
func NewMarkDeliveredCommandHandler(uowFactory DeliveryUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *MarkDeliveredCommandHandler) Handle(
	ctx context.Context, cmd MarkDeliveredCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	deliveredAt := time.Now().UTC()

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.MarkDelivered(cmd.Actor(), deliveredAt)
	})
}
