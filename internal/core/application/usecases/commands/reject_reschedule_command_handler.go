package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// RejectRescheduleCommandHandler handles rejection of a pending reschedule request.
type RejectRescheduleCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRejectRescheduleCommandHandler creates a handler for reschedule rejection.
func NewRejectRescheduleCommandHandler(uowFactory DeliveryUoWFactory) RejectRescheduleCommandHandler {
	return RejectRescheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *RejectRescheduleCommandHandler) Handle(
	ctx context.Context, cmd RejectRescheduleCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.RejectReschedule(cmd.Actor())
	})
}
