package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// ApproveRescheduleCommandHandler handles approval of a pending reschedule
// request, which lands the delivery in scheduled status on the new date.
type ApproveRescheduleCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewApproveRescheduleCommandHandler creates a handler for reschedule approval.
func NewApproveRescheduleCommandHandler(uowFactory DeliveryUoWFactory) ApproveRescheduleCommandHandler {
	return ApproveRescheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *ApproveRescheduleCommandHandler) Handle(
	ctx context.Context, cmd ApproveRescheduleCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.ApproveReschedule(cmd.Actor(), cmd.NewDate())
	})
}
