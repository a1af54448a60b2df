package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand lets the client dispute a delivery that never arrived or
// arrived wrong. A non-empty reason is mandatory so support has something to
// work with.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	actor      delivery.Actor
	reason     string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command to dispute a delivery.
func NewReportIssueCommand(
	deliveryID kernel.UUID, actorID kernel.UUID, role delivery.Role, reason string,
) (ReportIssueCommand, error) {
	actor, err := delivery.NewActor(actorID, role)
	if err != nil {
		return ReportIssueCommand{}, err
	}
	if err = deliveryID.Validate(); err != nil {
		return ReportIssueCommand{}, err
	}
	if reason == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("dispute reason")
	}

	return ReportIssueCommand{
		deliveryID: deliveryID,
		actor:      actor,
		reason:     reason,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// DeliveryID returns the target delivery record identifier.
func (c ReportIssueCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Actor returns the party requesting the transition.
func (c ReportIssueCommand) Actor() delivery.Actor {
	return c.actor
}

// Reason returns the dispute reason.
func (c ReportIssueCommand) Reason() string {
	return c.reason
}
