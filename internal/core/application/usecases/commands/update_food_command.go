package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrUpdateFoodCommandIsNotConstructed = errors.New(
		"UpdateFoodCommand must be created via NewUpdateFoodCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided")
)

// UpdateFoodCommand represents a partial update of a menu item.
// Nil fields are left unchanged; at least one field must be provided.
type UpdateFoodCommand struct { //nolint:recvcheck //using for validation
	foodID      kernel.UUID
	name        *string
	description *string
	price       *kernel.Price
	category    *string
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdateFoodCommand creates a command to update a menu item.
// Provided fields are validated; nil fields are ignored.
func NewUpdateFoodCommand(
	foodID kernel.UUID,
	name, description *string,
	price *kernel.Price,
	category *string,
	available *bool,
) (UpdateFoodCommand, error) {
	foodCommand := UpdateFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == nil && description == nil && price == nil && category == nil && available == nil {
		return UpdateFoodCommand{}, ErrNoFieldsToUpdate
	}

	if err := errors.Join(
		foodCommand.setFoodID(foodID),
		foodCommand.setName(name),
		foodCommand.setPrice(price),
		foodCommand.setCategory(category),
	); err != nil {
		return UpdateFoodCommand{}, err
	}

	foodCommand.description = description
	foodCommand.available = available
	return foodCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodCommandIsNotConstructed)
}

// FoodID returns the identifier of the menu item to update.
func (c UpdateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Name returns the new name, or nil when unchanged.
func (c UpdateFoodCommand) Name() *string {
	return c.name
}

// Description returns the new description, or nil when unchanged.
func (c UpdateFoodCommand) Description() *string {
	return c.description
}

// Price returns the new price, or nil when unchanged.
func (c UpdateFoodCommand) Price() *kernel.Price {
	return c.price
}

// Category returns the new category, or nil when unchanged.
func (c UpdateFoodCommand) Category() *string {
	return c.category
}

// Available returns the new availability flag, or nil when unchanged.
func (c UpdateFoodCommand) Available() *bool {
	return c.available
}

func (c *UpdateFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *UpdateFoodCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateFoodCommand) setPrice(price *kernel.Price) error {
	if price != nil {
		if err := price.Validate(); err != nil {
			return err
		}
	}

	c.price = price
	return nil
}

func (c *UpdateFoodCommand) setCategory(category *string) error {
	if category != nil && *category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
