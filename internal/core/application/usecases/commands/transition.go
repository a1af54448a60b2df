package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// applyTransition runs one transition as a single atomic read-modify-write: fetch
// the record inside a fresh unit of work, apply the lifecycle mutation, persist
// with the version guard, commit. Every transition handler funnels through here so
// the transaction discipline cannot drift between operations.
func applyTransition(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	deliveryID kernel.UUID,
	mutate func(record *delivery.DeliveryRecord) error,
) (*delivery.DeliveryRecord, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	record, err := repo.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	if err = mutate(record); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
