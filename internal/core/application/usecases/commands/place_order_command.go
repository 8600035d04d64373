package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to turn a user's cart into an order.
// The order ID is minted by the caller, so the placed order can be fetched
// immediately after the command succeeds.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, userID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and pending", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	userID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from a cart.
func NewPlaceOrderCommand(orderID, userID kernel.UUID) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering user.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
