package commands

import (
	"context"
)

// DeleteFoodCommandHandler handles the business logic for removing menu items.
type DeleteFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewDeleteFoodCommandHandler creates a handler for menu item removal.
func NewDeleteFoodCommandHandler(uowFactory FoodUoWFactory) DeleteFoodCommandHandler {
	return DeleteFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item removal command.
// The item must exist; removal of an unknown item is reported as not found.
func (h *DeleteFoodCommandHandler) Handle(ctx context.Context, cmd DeleteFoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foodRepo := uow.FoodRepository()
	if _, err := foodRepo.Get(ctx, cmd.FoodID()); err != nil {
		return err
	}

	if err := foodRepo.Delete(ctx, cmd.FoodID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
