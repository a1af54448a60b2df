package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery record
// aggregates. Records are only ever added and updated; cancellation is a terminal
// status, not a delete.
type DeliveryRepository interface {
	// Add persists a new delivery record. The record must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.DeliveryRecord) error

	// Update persists changes to an existing record. The write is guarded by the
	// version the aggregate was read at and fails with a ConflictError when the
	// row changed in between.
	Update(ctx context.Context, aggregate *delivery.DeliveryRecord) error

	// Get retrieves a record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryRecord, error)

	// GetAllForTrainer retrieves every record where the given party is the trainer.
	GetAllForTrainer(ctx context.Context, trainerID kernel.UUID) ([]*delivery.DeliveryRecord, error)

	// GetAllForClient retrieves every record where the given party is the client.
	GetAllForClient(ctx context.Context, clientID kernel.UUID) ([]*delivery.DeliveryRecord, error)
}
