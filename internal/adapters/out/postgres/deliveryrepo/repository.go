package deliveryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery record to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.DeliveryRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery record. The write is guarded by the version
// the aggregate was read at: if the row moved on in the meantime, no rows match
// and the caller gets a ConflictError instead of silently clobbering the other
// transition's effects.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.DeliveryRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	readVersion := dto.Version
	dto.Version = readVersion + 1

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, readVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery", aggregate.ID().String())
	}

	aggregate.AdvanceVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery record by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.DeliveryRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForTrainer retrieves all records where the given party is the trainer,
// oldest first.
func (r *GormDeliveryRepository) GetAllForTrainer(
	ctx context.Context, trainerID kernel.UUID,
) ([]*delivery.DeliveryRecord, error) {
	return r.getAllByParty(ctx, "trainer_id = ?", trainerID)
}

// GetAllForClient retrieves all records where the given party is the client,
// oldest first.
func (r *GormDeliveryRepository) GetAllForClient(
	ctx context.Context, clientID kernel.UUID,
) ([]*delivery.DeliveryRecord, error) {
	return r.getAllByParty(ctx, "client_id = ?", clientID)
}

func (r *GormDeliveryRepository) getAllByParty(
	ctx context.Context, condition string, partyID kernel.UUID,
) ([]*delivery.DeliveryRecord, error) {
	if err := partyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, condition, partyID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*delivery.DeliveryRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
