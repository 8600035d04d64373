package commands

import (
	"context"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
)

// AddCartItemCommandHandler handles the business logic for adding items to
// a cart. Only verified users may build carts, and only available menu
// items can be added.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Checks the user exists and is verified, the food exists and is available,
// then merges the quantity into an existing line or persists a new one.
// Returns the ID of the affected line, which differs from the command's
// line ID when the quantity merged into an existing entry.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !user.IsVerified() {
		return kernel.UUID{}, account.ErrUserNotVerified
	}

	item, err := uow.FoodRepository().Get(ctx, cmd.FoodID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !item.IsAvailable() {
		return kernel.UUID{}, food.ErrFoodUnavailable
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		return kernel.UUID{}, err
	}

	line, err := userCart.AddItem(cmd.LineID(), cmd.FoodID(), cmd.Quantity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := cartRepo.SaveLine(ctx, cmd.UserID(), line); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return line.ID(), nil
}
