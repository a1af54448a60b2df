package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesForActorQueryHandler retrieves delivery read models from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern; the aggregate is never rehydrated on the read path.
type GetDeliveriesForActorQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesForActorQueryHandler creates a handler for delivery list queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveriesForActorQueryHandler(db *gorm.DB) GetDeliveriesForActorQueryHandler {
	return GetDeliveriesForActorQueryHandler{db: db}
}

// Handle executes the query and returns the actor's deliveries ordered by
// creation time, oldest first. Trainers are matched on trainer_id, clients on
// client_id.
func (h GetDeliveriesForActorQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesForActorQuery,
) ([]GetDeliveriesForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partyColumn := "client_id"
	if query.Role() == delivery.RoleTrainer {
		partyColumn = "trainer_id"
	}

	deliveries := make([]GetDeliveriesForActorQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity,
			status,
			delivery_method,
			tracking_number,
			scheduled_date,
			delivered_at,
			confirmed_at,
			reschedule_date,
			created_at
		FROM deliveries
		WHERE `+partyColumn+` = ?
		ORDER BY created_at
	`, query.ActorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetDeliveriesForActorQueryResponse
		var id uuid.UUID
		var orderID uuid.NullUUID
		var status, method string
		var trackingNumber sql.NullString
		var scheduledDate, deliveredAt, confirmedAt, rescheduleDate sql.NullTime
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&response.ProductName,
			&response.Quantity,
			&status,
			&method,
			&trackingNumber,
			&scheduledDate,
			&deliveredAt,
			&confirmedAt,
			&rescheduleDate,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = deliveryID

		if orderID.Valid {
			ref, refErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if refErr != nil {
				return nil, refErr
			}
			response.OrderID = &ref
		}

		response.Status = delivery.Status(status)
		response.Method = delivery.Method(method)
		response.TrackingNumber = trackingNumber.String
		response.ScheduledDate = nullableTime(scheduledDate)
		response.DeliveredAt = nullableTime(deliveredAt)
		response.ConfirmedAt = nullableTime(confirmedAt)
		response.RescheduleDate = nullableTime(rescheduleDate)
		response.CreatedAt = createdAt

		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
