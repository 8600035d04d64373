package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emptyCart(t *testing.T, userID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	return c
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	foodID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(userID, kernel.NewUUID(), foodID, 2)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, userID).Return(restoredUser(t, userID, true), nil).Once()

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Get", mock.Anything, foodID).Return(restoredFood(t, foodID, "suya", true), nil).Once()

	cartRepo := new(MockCartRepository)
	cartRepo.On("GetByUser", mock.Anything, userID).Return(emptyCart(t, userID), nil).Once()
	cartRepo.On("SaveLine", mock.Anything, userID, mock.AnythingOfType("*cart.Line")).Return(nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("FoodRepository").Return(foodRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	lineID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, lineID.Validate())
	userRepo.AssertExpectations(t)
	foodRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MergesQuantity(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	foodID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(userID, kernel.NewUUID(), foodID, 3)

	existingLine, err := cart.NewLine(kernel.NewUUID(), foodID, 2)
	require.NoError(t, err)
	existingCart, err := cart.RestoreCart(userID, []*cart.Line{existingLine})
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, userID).Return(restoredUser(t, userID, true), nil).Once()

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Get", mock.Anything, foodID).Return(restoredFood(t, foodID, "suya", true), nil).Once()

	var saved *cart.Line
	cartRepo := new(MockCartRepository)
	cartRepo.On("GetByUser", mock.Anything, userID).Return(existingCart, nil).Once()
	cartRepo.On("SaveLine", mock.Anything, userID, mock.AnythingOfType("*cart.Line")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*cart.Line) }).
		Return(nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("FoodRepository").Return(foodRepo).Once()
	uow.On("CartRepository").Return(cartRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	lineID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.True(t, lineID.IsEqual(existingLine.ID()))
	require.True(t, saved.ID().IsEqual(existingLine.ID()))
	require.Equal(t, 5, saved.Quantity())
}

func TestAddCartItemCommandHandler_Handle_UnverifiedUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(userID, kernel.NewUUID(), kernel.NewUUID(), 1)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, userID).Return(restoredUser(t, userID, false), nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, account.ErrUserNotVerified)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_UnavailableFood(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	foodID := kernel.NewUUID()
	cmd, _ := commands.NewAddCartItemCommand(userID, kernel.NewUUID(), foodID, 1)

	userRepo := new(MockUserRepository)
	userRepo.On("Get", mock.Anything, userID).Return(restoredUser(t, userID, true), nil).Once()

	foodRepo := new(MockFoodRepository)
	foodRepo.On("Get", mock.Anything, foodID).Return(restoredFood(t, foodID, "suya", false), nil).Once()

	uow := new(MockCartUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("FoodRepository").Return(foodRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, food.ErrFoodUnavailable)
	foodRepo.AssertExpectations(t)
}
