package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
)

// ConfirmReceiptCommandHandler handles the delivered -> confirmed transition.
type ConfirmReceiptCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmation.
func NewConfirmReceiptCommandHandler(uowFactory DeliveryUoWFactory) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *ConfirmReceiptCommandHandler) Handle(
	ctx context.Context, cmd ConfirmReceiptCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	confirmedAt := time.Now().UTC()

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.ConfirmReceipt(cmd.Actor(), confirmedAt)
	})
}
