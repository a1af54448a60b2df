package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/delivery"
)

// CreateDeliveryRequest is the payload for recording a new delivery obligation.
// Party identifiers come from the commerce collaborator, not from actor headers.
type CreateDeliveryRequest struct {
	OrderID     *string `json:"orderId,omitempty"`
	OrderItemID *string `json:"orderItemId,omitempty"`
	TrainerID   string  `json:"trainerId"`
	ClientID    string  `json:"clientId"`
	ProductID   *string `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Method      string  `json:"deliveryMethod"`
}

// ScheduleRequest carries the handoff date for scheduling and for reschedule
// approval. The date is required and must be an ISO-8601 date or an RFC 3339
// timestamp.
type ScheduleRequest struct {
	Date string `json:"date"`
}

// ReasonRequest carries the free-text reason for disputes and cancellations.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// RescheduleRequestBody opens a reschedule negotiation. The date is optional
// and unparseable values are treated as absent rather than rejected.
type RescheduleRequestBody struct {
	Date   *string `json:"date,omitempty"`
	Reason string  `json:"reason"`
}

// RescheduleResponse is the pending negotiation state on a delivery.
type RescheduleResponse struct {
	RequestedDate *string `json:"requestedDate"`
	Reason        string  `json:"reason"`
	RequestedAt   *string `json:"requestedAt"`
}

// DeliveryResponse is the full delivery record representation returned by the
// command endpoints.
type DeliveryResponse struct {
	ID             string              `json:"id"`
	OrderID        *string             `json:"orderId,omitempty"`
	OrderItemID    *string             `json:"orderItemId,omitempty"`
	TrainerID      string              `json:"trainerId"`
	ClientID       string              `json:"clientId"`
	ProductID      *string             `json:"productId,omitempty"`
	ProductName    string              `json:"productName"`
	Quantity       int                 `json:"quantity"`
	Status         string              `json:"status"`
	Method         string              `json:"deliveryMethod"`
	TrackingNumber string              `json:"trackingNumber,omitempty"`
	ScheduledDate  *string             `json:"scheduledDate"`
	DeliveredAt    *string             `json:"deliveredAt"`
	ConfirmedAt    *string             `json:"confirmedAt"`
	Notes          string              `json:"notes,omitempty"`
	ClientNotes    string              `json:"clientNotes,omitempty"`
	Reschedule     *RescheduleResponse `json:"reschedule"`
	DisputeReason  string              `json:"disputeReason,omitempty"`
	CancelReason   string              `json:"cancelReason,omitempty"`
	Version        int64               `json:"version"`
}

// DeliveryListItem is the read-model representation returned by the list endpoint.
type DeliveryListItem struct {
	ID             string  `json:"id"`
	OrderID        *string `json:"orderId,omitempty"`
	ProductName    string  `json:"productName"`
	Quantity       int     `json:"quantity"`
	Status         string  `json:"status"`
	Method         string  `json:"deliveryMethod"`
	TrackingNumber string  `json:"trackingNumber,omitempty"`
	ScheduledDate  *string `json:"scheduledDate"`
	DeliveredAt    *string `json:"deliveredAt"`
	ConfirmedAt    *string `json:"confirmedAt"`
	RescheduleDate *string `json:"rescheduleDate"`
	CreatedAt      string  `json:"createdAt"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toDeliveryResponse(record *delivery.DeliveryRecord) DeliveryResponse {
	response := DeliveryResponse{
		ID:             record.ID().String(),
		TrainerID:      record.TrainerID().String(),
		ClientID:       record.ClientID().String(),
		ProductName:    record.ProductName(),
		Quantity:       record.Quantity(),
		Status:         record.Status().String(),
		Method:         record.DeliveryMethod().String(),
		TrackingNumber: record.TrackingNumber(),
		ScheduledDate:  formatDate(record.ScheduledDate()),
		DeliveredAt:    formatTimestamp(record.DeliveredAt()),
		ConfirmedAt:    formatTimestamp(record.ConfirmedAt()),
		Notes:          record.Notes(),
		ClientNotes:    record.ClientNotes(),
		DisputeReason:  record.DisputeReason(),
		CancelReason:   record.CancelReason(),
		Version:        record.Version(),
	}

	if id := record.OrderID(); id != nil {
		s := id.String()
		response.OrderID = &s
	}
	if id := record.OrderItemID(); id != nil {
		s := id.String()
		response.OrderItemID = &s
	}
	if id := record.ProductID(); id != nil {
		s := id.String()
		response.ProductID = &s
	}

	if req := record.RescheduleRequest(); req != nil {
		response.Reschedule = &RescheduleResponse{
			RequestedDate: formatDate(req.RequestedDate()),
			Reason:        req.Reason(),
			RequestedAt:   formatTimestamp(req.RequestedAt()),
		}
	}

	return response
}

func toDeliveryListItem(item queries.GetDeliveriesForActorQueryResponse) DeliveryListItem {
	listItem := DeliveryListItem{
		ID:             item.ID.String(),
		ProductName:    item.ProductName,
		Quantity:       item.Quantity,
		Status:         item.Status.String(),
		Method:         item.Method.String(),
		TrackingNumber: item.TrackingNumber,
		ScheduledDate:  formatDate(item.ScheduledDate),
		DeliveredAt:    formatTimestamp(item.DeliveredAt),
		ConfirmedAt:    formatTimestamp(item.ConfirmedAt),
		RescheduleDate: formatDate(item.RescheduleDate),
		CreatedAt:      item.CreatedAt.UTC().Format(time.RFC3339),
	}

	if item.OrderID != nil {
		s := item.OrderID.String()
		listItem.OrderID = &s
	}

	return listItem
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	s := value.UTC().Format(time.DateOnly)
	return &s
}

func formatTimestamp(value *time.Time) *string {
	if value == nil {
		return nil
	}
	s := value.UTC().Format(time.RFC3339)
	return &s
}
