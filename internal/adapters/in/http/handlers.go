package http

import (
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDelivery handles POST /api/v1/deliveries - records a new delivery obligation.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var request CreateDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	trainerID, err := kernel.UUIDFromString(request.TrainerID)
	if err != nil {
		return respondError(ctx, err)
	}
	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := optionalUUIDFromString(request.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}
	orderItemID, err := optionalUUIDFromString(request.OrderItemID)
	if err != nil {
		return respondError(ctx, err)
	}
	productID, err := optionalUUIDFromString(request.ProductID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(),
		orderID,
		orderItemID,
		trainerID,
		clientID,
		productID,
		request.ProductName,
		request.Quantity,
		delivery.Method(request.Method),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDeliveryResponse(record))
}

// GetDeliveries handles GET /api/v1/deliveries - lists the caller's deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDeliveriesForActorQuery(actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.handlers.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DeliveryListItem, len(deliveries))
	for i, item := range deliveries {
		response[i] = toDeliveryListItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkReady handles POST /api/v1/deliveries/:id/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkReadyCommand(deliveryID, actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.MarkReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// MarkScheduled handles POST /api/v1/deliveries/:id/schedule.
func (s *Server) MarkScheduled(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ScheduleRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	date, err := parseDate(request.Date)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkScheduledCommand(deliveryID, actorID, role, date)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.MarkScheduled.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// MarkOutForDelivery handles POST /api/v1/deliveries/:id/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(deliveryID, actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.MarkOutForDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// MarkDelivered handles POST /api/v1/deliveries/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(deliveryID, actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.MarkDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// ConfirmReceipt handles POST /api/v1/deliveries/:id/confirm.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmReceiptCommand(deliveryID, actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.ConfirmReceipt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// ReportIssue handles POST /api/v1/deliveries/:id/dispute.
func (s *Server) ReportIssue(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewReportIssueCommand(deliveryID, actorID, role, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.ReportIssue.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReasonRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, actorID, role, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.CancelDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// RequestReschedule handles POST /api/v1/deliveries/:id/reschedule/request.
func (s *Server) RequestReschedule(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request RescheduleRequestBody
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	// Unusable dates degrade to a dateless request instead of failing.
	var proposedDate *time.Time
	if request.Date != nil {
		proposedDate = delivery.NormalizeDate(*request.Date)
	}

	cmd, err := commands.NewRequestRescheduleCommand(deliveryID, actorID, role, proposedDate, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.RequestReschedule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// ApproveReschedule handles POST /api/v1/deliveries/:id/reschedule/approve.
func (s *Server) ApproveReschedule(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ScheduleRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	date, err := parseDate(request.Date)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveRescheduleCommand(deliveryID, actorID, role, date)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.ApproveReschedule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

// RejectReschedule handles POST /api/v1/deliveries/:id/reschedule/reject.
func (s *Server) RejectReschedule(ctx echo.Context) error {
	deliveryID, actorID, role, err := transitionParams(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectRescheduleCommand(deliveryID, actorID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.handlers.RejectReschedule.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(record))
}

func transitionParams(ctx echo.Context) (kernel.UUID, kernel.UUID, delivery.Role, error) {
	deliveryID, err := deliveryIDFromPath(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", err
	}
	actorID, role, err := actorFromRequest(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", err
	}
	return deliveryID, actorID, role, nil
}

func optionalUUIDFromString(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
