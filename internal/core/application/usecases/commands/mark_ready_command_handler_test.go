package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixture bundles a stored record with its parties for transition handler tests.
type fixture struct {
	record    *delivery.DeliveryRecord
	trainerID kernel.UUID
	clientID  kernel.UUID
}

func newFixture(t *testing.T, status delivery.Status) fixture {
	t.Helper()

	trainerID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	var scheduledDate *time.Time
	if status == delivery.StatusScheduled {
		date := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
		scheduledDate = &date
	}

	record, err := delivery.RestoreDeliveryRecord(delivery.RestoreDeliveryParams{
		ID:            kernel.NewUUID(),
		TrainerID:     trainerID,
		ClientID:      clientID,
		ProductName:   "Kettlebell 16kg",
		Quantity:      1,
		Status:        status,
		Method:        delivery.MethodInPerson,
		ScheduledDate: scheduledDate,
		Version:       1,
	})
	require.NoError(t, err)

	return fixture{record: record, trainerID: trainerID, clientID: clientID}
}

func TestMarkReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	fix := newFixture(t, delivery.StatusPending)
	cmd, err := commands.NewMarkReadyCommand(fix.record.ID(), fix.trainerID, delivery.RoleTrainer)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fix.record.ID()).Return(fix.record, nil).Once(),
		repo.On("Update", mock.Anything, fix.record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReadyCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, delivery.StatusReady, record.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkReadyCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewMarkReadyCommand(deliveryID, kernel.NewUUID(), delivery.RoleTrainer)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, deliveryID).
			Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReadyCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, record)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkReadyCommandHandler_Handle_UnauthorizedActorRollsBack(t *testing.T) {
	ctx := context.Background()
	fix := newFixture(t, delivery.StatusPending)
	// The client holds no permission for this operation.
	cmd, err := commands.NewMarkReadyCommand(fix.record.ID(), fix.clientID, delivery.RoleClient)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fix.record.ID()).Return(fix.record, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReadyCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Nil(t, record)
	assert.Equal(t, delivery.StatusPending, fix.record.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkReadyCommandHandler_Handle_ConflictFromUpdate(t *testing.T) {
	ctx := context.Background()
	fix := newFixture(t, delivery.StatusPending)
	cmd, err := commands.NewMarkReadyCommand(fix.record.ID(), fix.trainerID, delivery.RoleTrainer)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, fix.record.ID()).Return(fix.record, nil).Once(),
		repo.On("Update", mock.Anything, fix.record).
			Return(errs.NewConflictError("delivery", fix.record.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkReadyCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	assert.Nil(t, record)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkReadyCommand_Validate(t *testing.T) {
	t.Run("should fail for zero-value command", func(t *testing.T) {
		cmd := commands.MarkReadyCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrMarkReadyCommandIsNotConstructed, err)
	})

	t.Run("should fail with invalid delivery ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewMarkReadyCommand(invalidID, kernel.NewUUID(), delivery.RoleTrainer)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := commands.NewMarkReadyCommand(kernel.NewUUID(), kernel.NewUUID(), delivery.Role("admin"))

		require.Error(t, err)
	})
}
