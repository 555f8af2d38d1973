package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_RestoresPhysicalStock(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notebook := storedNotebook(t, 10, 10)
	ebook := storedEbook(t, 11)
	o := storedOrder(t, 5, 1, 3, notebook, ebook)
	require.True(t, o.Confirm())
	require.True(t, o.Process())
	require.True(t, o.Ship())

	// the stored state after the order took three units
	stored := storedNotebook(t, 10, 7)

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, notebook.ID()).Return(stored, nil).Once(),
		productRepo.On("Update", ctx, stored).Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)

	// Act
	changed, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, order.Cancelled, o.Status())
	assert.Equal(t, 10, stored.Stock())

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o := storedOrder(t, 5, 1, 3, storedNotebook(t, 10, 10))
	require.True(t, o.Cancel())

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)

	// Act
	changed, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, changed)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_SkipsDeletedProducts(t *testing.T) {
	// Arrange
	ctx := t.Context()
	notebook := storedNotebook(t, 10, 10)
	o := storedOrder(t, 5, 1, 2, notebook)

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, notebook.ID()).Return(nil, errs.NewObjectNotFoundError("product", notebook.ID())).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)

	// Act
	changed, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, changed)
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	o := storedOrder(t, 5, 1, 1, storedEbook(t, 11))
	require.True(t, o.Confirm())
	require.True(t, o.Process())
	require.True(t, o.Ship())
	require.True(t, o.Deliver(o.CreatedAt()))

	cmd, err := commands.NewCancelOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)

	// Act
	changed, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, order.Delivered, o.Status())
}
