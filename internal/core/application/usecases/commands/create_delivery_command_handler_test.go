package commands_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), nil, nil,
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Yoga Mat", 1, delivery.MethodInPerson,
	)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.DeliveryRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, delivery.StatusPending, record.Status())
	assert.Equal(t, "Yoga Mat", record.ProductName())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_AttachesOrderRefs(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	orderItemID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), &orderID, &orderItemID,
		kernel.NewUUID(), kernel.NewUUID(), &productID,
		"Shaker Bottle", 3, delivery.MethodFrontDesk,
	)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(repo).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.DeliveryRecord")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record.OrderID())
	assert.True(t, record.OrderID().IsEqual(orderID))
	require.NotNil(t, record.OrderItemID())
	assert.True(t, record.OrderItemID().IsEqual(orderItemID))
	require.NotNil(t, record.ProductID())
	assert.True(t, record.ProductID().IsEqual(productID))
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly

	factory := new(MockDeliveryUoWFactory)
	h := commands.NewCreateDeliveryCommandHandler(factory)

	record, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "must be created via NewCreateDeliveryCommand constructor")
}

func TestCreateDeliveryCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), nil, nil,
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"Yoga Mat", 1, delivery.MethodInPerson,
	)
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory)
	record, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, record)
	uow.AssertNotCalled(t, "Commit", ctx)
}
