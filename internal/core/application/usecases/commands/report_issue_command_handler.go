package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

// ReportIssueCommandHandler handles the transition into disputed status.
type ReportIssueCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReportIssueCommandHandler creates a handler for dispute reporting.
func NewReportIssueCommandHandler(uowFactory DeliveryUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated record.
func (h *ReportIssueCommandHandler) Handle(
	ctx context.Context, cmd ReportIssueCommand,
) (*delivery.DeliveryRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return applyTransition(ctx, h.uowFactory, cmd.DeliveryID(), func(record *delivery.DeliveryRecord) error {
		return record.ReportIssue(cmd.Actor(), cmd.Reason())
	})
}
