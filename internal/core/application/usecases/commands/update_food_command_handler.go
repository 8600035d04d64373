package commands

import (
	"context"
	"errors"

	"kitchen/internal/pkg/errs"
)

// UpdateFoodCommandHandler handles the business logic for menu item updates.
type UpdateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewUpdateFoodCommandHandler creates a handler for menu item updates.
func NewUpdateFoodCommandHandler(uowFactory FoodUoWFactory) UpdateFoodCommandHandler {
	return UpdateFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command.
// Applies only the provided fields. A rename to a name already taken by
// another item is rejected.
func (h *UpdateFoodCommandHandler) Handle(ctx context.Context, cmd UpdateFoodCommand) error {
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
	item, err := foodRepo.Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil && *name != item.Name() {
		existing, err := foodRepo.GetByName(ctx, *name)
		if err == nil && !existing.ID().IsEqual(item.ID()) {
			return ErrFoodNameTaken
		}
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		if err := item.Rename(*name); err != nil {
			return err
		}
	}

	if description := cmd.Description(); description != nil {
		item.ChangeDescription(*description)
	}

	if price := cmd.Price(); price != nil {
		if err := item.ChangePrice(*price); err != nil {
			return err
		}
	}

	if category := cmd.Category(); category != nil {
		if err := item.ChangeCategory(*category); err != nil {
			return err
		}
	}

	if available := cmd.Available(); available != nil {
		item.SetAvailability(*available)
	}

	if err := foodRepo.Update(ctx, item); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
