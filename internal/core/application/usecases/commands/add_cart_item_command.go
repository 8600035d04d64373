package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
)

// AddCartItemCommand represents a request to put a food item into a user's
// cart. When the food is already in the cart the quantities are merged;
// otherwise a new line is created under the given line ID.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand(userID, kernel.NewUUID(), foodID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart data: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	lineID   kernel.UUID
	foodID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a food item to a cart.
// Validates that all identifiers are valid and the quantity is positive.
func NewAddCartItemCommand(userID, lineID, foodID kernel.UUID, quantity int) (AddCartItemCommand, error) {
	cartCommand := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cartCommand.setUserID(userID),
		cartCommand.setLineID(lineID),
		cartCommand.setFoodID(foodID),
		cartCommand.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cartCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// UserID returns the cart owner.
func (c AddCartItemCommand) UserID() kernel.UUID {
	return c.userID
}

// LineID returns the identifier for the line if a new one is created.
func (c AddCartItemCommand) LineID() kernel.UUID {
	return c.lineID
}

// FoodID returns the menu item to add.
func (c AddCartItemCommand) FoodID() kernel.UUID {
	return c.foodID
}

// Quantity returns how many units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *AddCartItemCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddCartItemCommand) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	c.foodID = foodID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
