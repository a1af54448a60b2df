// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery record persistence. It implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery records.
// One row per product-delivery obligation, indexed for the party-scoped listings
// both trainer and client views run.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	OrderItemID *uuid.UUID `gorm:"type:uuid;index"`
	TrainerID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClientID    uuid.UUID  `gorm:"type:uuid;index;not null"`

	ProductID   *uuid.UUID `gorm:"type:uuid"`
	ProductName string     `gorm:"not null"`
	Quantity    int        `gorm:"not null"`

	Status         string `gorm:"index;not null"`
	DeliveryMethod string `gorm:"not null"`
	TrackingNumber string

	ScheduledDate *time.Time
	DeliveredAt   *time.Time
	ConfirmedAt   *time.Time

	Notes       string
	ClientNotes string

	RescheduleDate        *time.Time
	RescheduleReason      *string
	RescheduleRequestedAt *time.Time

	DisputeReason string
	CancelReason  string

	Version int64 `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
// The pending reschedule request maps to the structured columns; the legacy
// in-note encoding is never written.
func fromDomain(record *delivery.DeliveryRecord) DeliveryDTO {
	dto := DeliveryDTO{
		ID:             record.ID().Bytes(),
		TrainerID:      record.TrainerID().Bytes(),
		ClientID:       record.ClientID().Bytes(),
		ProductName:    record.ProductName(),
		Quantity:       record.Quantity(),
		Status:         record.Status().String(),
		DeliveryMethod: record.DeliveryMethod().String(),
		TrackingNumber: record.TrackingNumber(),
		ScheduledDate:  record.ScheduledDate(),
		DeliveredAt:    record.DeliveredAt(),
		ConfirmedAt:    record.ConfirmedAt(),
		Notes:          record.Notes(),
		ClientNotes:    record.ClientNotes(),
		DisputeReason:  record.DisputeReason(),
		CancelReason:   record.CancelReason(),
		Version:        record.Version(),
	}

	if id := record.OrderID(); id != nil {
		raw := id.Bytes()
		dto.OrderID = &raw
	}
	if id := record.OrderItemID(); id != nil {
		raw := id.Bytes()
		dto.OrderItemID = &raw
	}
	if id := record.ProductID(); id != nil {
		raw := id.Bytes()
		dto.ProductID = &raw
	}

	if req := record.RescheduleRequest(); req != nil {
		dto.RescheduleDate = req.RequestedDate()
		reason := req.Reason()
		dto.RescheduleReason = &reason
		dto.RescheduleRequestedAt = req.RequestedAt()
	}

	return dto
}

// toDomain converts a database row to a delivery aggregate. Rows written by the
// legacy system carry the reschedule request encoded in client_notes instead of
// the structured columns; those are decoded and adopted here, and the encoded
// note is dropped so a resolved request cannot be re-adopted from the marker
// text on a later read. The next write persists the adopted request
// structurally, completing the migration for that row.
func toDomain(dto DeliveryDTO) (*delivery.DeliveryRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	trainerID, err := kernel.UUIDFromBytes(dto.TrainerID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := optionalUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	orderItemID, err := optionalUUID(dto.OrderItemID)
	if err != nil {
		return nil, err
	}
	productID, err := optionalUUID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	clientNotes := dto.ClientNotes
	reschedule := rescheduleFromColumns(dto)
	if decoded := delivery.DecodeRescheduleNote(clientNotes); decoded != nil {
		if reschedule == nil {
			reschedule = decoded
		}
		// Drop the encoded note even when the columns already hold the request,
		// or resolving it would leave a marker that revives on the next read.
		clientNotes = ""
	}

	return delivery.RestoreDeliveryRecord(delivery.RestoreDeliveryParams{
		ID:             id,
		OrderID:        orderID,
		OrderItemID:    orderItemID,
		TrainerID:      trainerID,
		ClientID:       clientID,
		ProductID:      productID,
		ProductName:    dto.ProductName,
		Quantity:       dto.Quantity,
		Status:         delivery.Status(dto.Status),
		Method:         delivery.Method(dto.DeliveryMethod),
		TrackingNumber: dto.TrackingNumber,
		ScheduledDate:  dto.ScheduledDate,
		DeliveredAt:    dto.DeliveredAt,
		ConfirmedAt:    dto.ConfirmedAt,
		Notes:          dto.Notes,
		ClientNotes:    clientNotes,
		Reschedule:     reschedule,
		DisputeReason:  dto.DisputeReason,
		CancelReason:   dto.CancelReason,
		Version:        dto.Version,
	})
}

func rescheduleFromColumns(dto DeliveryDTO) *delivery.RescheduleRequest {
	if dto.RescheduleDate == nil && dto.RescheduleReason == nil && dto.RescheduleRequestedAt == nil {
		return nil
	}

	var reason string
	if dto.RescheduleReason != nil {
		reason = *dto.RescheduleReason
	}
	req := delivery.NewRescheduleRequest(dto.RescheduleDate, reason, dto.RescheduleRequestedAt)
	return &req
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
