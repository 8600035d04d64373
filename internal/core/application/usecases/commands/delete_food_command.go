package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrDeleteFoodCommandIsNotConstructed = errors.New(
		"DeleteFoodCommand must be created via NewDeleteFoodCommand constructor",
	)
)

// DeleteFoodCommand represents a request to remove a menu item.
// Existing order lines keep their frozen copy of the item's price, so
// deletion never rewrites order history.
type DeleteFoodCommand struct { //nolint:recvcheck //using for validation
	foodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteFoodCommand creates a command to remove a menu item.
func NewDeleteFoodCommand(foodID kernel.UUID) (DeleteFoodCommand, error) {
	foodCommand := DeleteFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := foodCommand.setFoodID(foodID); err != nil {
		return DeleteFoodCommand{}, err
	}

	return foodCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteFoodCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFoodCommandIsNotConstructed)
}

// FoodID returns the identifier of the menu item to remove.
func (c DeleteFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c *DeleteFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}
