package commands

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/pkg/errs"
)

// ErrFoodNameTaken is returned when a menu item with the given name
// already exists. Menu names are globally unique.
var ErrFoodNameTaken = errors.New("a food item with this name already exists")

// CreateFoodCommandHandler handles the business logic for adding menu items.
type CreateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewCreateFoodCommandHandler creates a handler for menu item creation.
func NewCreateFoodCommandHandler(uowFactory FoodUoWFactory) CreateFoodCommandHandler {
	return CreateFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// Rejects duplicate names, then persists the new item as available.
func (h *CreateFoodCommandHandler) Handle(ctx context.Context, cmd CreateFoodCommand) error {
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

	_, err := foodRepo.GetByName(ctx, cmd.Name())
	if err == nil {
		return ErrFoodNameTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	item, err := food.NewFood(cmd.FoodID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), time.Now())
	if err != nil {
		return err
	}

	if err := foodRepo.Add(ctx, item); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
