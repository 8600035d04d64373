package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(orderID, userID)

	aggregate := restoredOrder(t, orderID, userID, order.Pending)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUser", mock.Anything, orderID, userID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(orderID, userID)

	aggregate := restoredOrder(t, orderID, userID, order.Preparing)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUser", mock.Anything, orderID, userID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderNotCancellable)
	require.Equal(t, order.Preparing, aggregate.Status())
}

func TestCancelOrderCommandHandler_Handle_ForeignOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewCancelOrderCommand(orderID, userID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUser", mock.Anything, orderID, userID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
