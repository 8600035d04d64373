package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a customer request to cancel their own
// pending order. The lookup is owner-scoped: another user's order is
// reported as not found rather than as a permission error.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, userID kernel.UUID) (CancelOrderCommand, error) {
	orderCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the requesting user.
func (c CancelOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
