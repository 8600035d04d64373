package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateFoodCommandIsNotConstructed = errors.New(
		"CreateFoodCommand must be created via NewCreateFoodCommand constructor",
	)
)

// CreateFoodCommand represents a request to add a new item to the menu.
type CreateFoodCommand struct { //nolint:recvcheck //using for validation
	foodID      kernel.UUID
	name        string
	description string
	price       kernel.Price
	category    string

	guard guard.ConstructorGuard
}

// NewCreateFoodCommand creates a command to add a menu item.
// Validates that the food ID is valid, name and category are not empty, and
// the price was properly constructed. The description is optional.
func NewCreateFoodCommand(
	foodID kernel.UUID,
	name, description string,
	price kernel.Price,
	category string,
) (CreateFoodCommand, error) {
	foodCommand := CreateFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		foodCommand.setFoodID(foodID),
		foodCommand.setName(name),
		foodCommand.setPrice(price),
		foodCommand.setCategory(category),
	); err != nil {
		return CreateFoodCommand{}, err
	}

	foodCommand.description = description
	return foodCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodCommandIsNotConstructed)
}

// FoodID returns the identifier for the new menu item.
func (c CreateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Name returns the menu item's name.
func (c CreateFoodCommand) Name() string {
	return c.name
}

// Description returns the menu item's description, possibly empty.
func (c CreateFoodCommand) Description() string {
	return c.description
}

// Price returns the menu item's price.
func (c CreateFoodCommand) Price() kernel.Price {
	return c.price
}

// Category returns the menu item's category.
func (c CreateFoodCommand) Category() string {
	return c.category
}

func (c *CreateFoodCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *CreateFoodCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateFoodCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateFoodCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
