package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
)

// RequestRescheduleCommandHandler records a pending reschedule request on the
// delivery without changing its status.
type RequestRescheduleCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRequestRescheduleCommandHandler creates a handler for reschedule requests.
func NewRequestRescheduleCommandHandler(uowFactory DeliveryUoWFactory) RequestRescheduleCommandHandler {
	return RequestRescheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *RequestRescheduleCommandHandler) Handle(
	ctx context.Context, cmd RequestRescheduleCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requestedAt := time.Now().UTC()

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.RequestReschedule(cmd.Actor(), cmd.ProposedDate(), cmd.Reason(), requestedAt)
	})
}
