// Package http exposes the delivery lifecycle over a REST API. Handlers
// translate between wire DTOs and application commands and queries; they hold
// no business rules of their own.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names under which the API gateway injects the authenticated caller.
// Session handling lives in a collaborator; this service trusts the headers.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Handlers bundles the application handlers the server dispatches to.
type Handlers struct {
	CreateDelivery     commands.CreateDeliveryCommandHandler
	MarkReady          commands.MarkReadyCommandHandler
	MarkScheduled      commands.MarkScheduledCommandHandler
	MarkOutForDelivery commands.MarkOutForDeliveryCommandHandler
	MarkDelivered      commands.MarkDeliveredCommandHandler
	ConfirmReceipt     commands.ConfirmReceiptCommandHandler
	ReportIssue        commands.ReportIssueCommandHandler
	CancelDelivery     commands.CancelDeliveryCommandHandler
	RequestReschedule  commands.RequestRescheduleCommandHandler
	ApproveReschedule  commands.ApproveRescheduleCommandHandler
	RejectReschedule   commands.RejectRescheduleCommandHandler
	ListDeliveries     queries.GetDeliveriesForActorQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.POST("/deliveries/:id/ready", s.MarkReady)
	api.POST("/deliveries/:id/schedule", s.MarkScheduled)
	api.POST("/deliveries/:id/out-for-delivery", s.MarkOutForDelivery)
	api.POST("/deliveries/:id/delivered", s.MarkDelivered)
	api.POST("/deliveries/:id/confirm", s.ConfirmReceipt)
	api.POST("/deliveries/:id/dispute", s.ReportIssue)
	api.POST("/deliveries/:id/cancel", s.CancelDelivery)
	api.POST("/deliveries/:id/reschedule/request", s.RequestReschedule)
	api.POST("/deliveries/:id/reschedule/approve", s.ApproveReschedule)
	api.POST("/deliveries/:id/reschedule/reject", s.RejectReschedule)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorFromRequest reads the caller identity from the gateway headers.
func actorFromRequest(ctx echo.Context) (kernel.UUID, delivery.Role, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return kernel.UUID{}, "", errs.NewValueIsRequiredError(HeaderActorID)
	}
	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, "", err
	}

	role := delivery.Role(strings.ToLower(ctx.Request().Header.Get(HeaderActorRole)))
	if err = role.Validate(); err != nil {
		return kernel.UUID{}, "", err
	}

	return actorID, role, nil
}

// parseDate accepts an ISO-8601 date or an RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse(time.DateOnly, raw); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return date, nil
}

func deliveryIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// respondError maps application errors onto HTTP statuses. Wrong-state and
// wrong-actor rejections stay distinguishable through the error message, which
// names either the source status or the offending role.
func respondError(ctx echo.Context, err error) error {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrencyConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
