package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

var (
	// ErrCartIsEmpty is returned when an order is placed from an empty cart.
	ErrCartIsEmpty = errors.New("cart is empty, add items before placing an order")

	// ErrItemsUnavailable is returned when the cart references menu items
	// that are unavailable or no longer exist.
	ErrItemsUnavailable = errors.New("some items in the cart are no longer available")
)

// UnavailableItemsError reports which cart items block order placement.
// A food that vanished from the menu since it was added counts as
// unavailable too.
type UnavailableItemsError struct {
	Items []UnavailableItem
}

// UnavailableItem identifies one blocking cart item.
// Name is empty when the food no longer exists.
type UnavailableItem struct {
	FoodID kernel.UUID
	Name   string
}

func (e *UnavailableItemsError) Error() string {
	names := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		if item.Name != "" {
			names = append(names, item.Name)
			continue
		}
		names = append(names, item.FoodID.String())
	}

	return fmt.Sprintf("%s: %s", ErrItemsUnavailable, strings.Join(names, ", "))
}

func (e *UnavailableItemsError) Unwrap() error {
	return ErrItemsUnavailable
}

// PlaceOrderCommandHandler handles the business logic for order placement.
// Converts the user's cart into a pending order with frozen prices and
// clears the cart, all inside one serializable transaction.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewPlaceOrderCommand(orderID, userID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and the cart is empty
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Verifies the user, re-reads every cart item against the live menu, and
// rejects placement when the cart is empty or any item is unavailable.
// On success the order insert, its lines, and the cart wipe commit together
// or not at all.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.BeginSerializable(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !user.IsVerified() {
		return account.ErrUserNotVerified
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if userCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	cartLines := userCart.Lines()
	foodIDs := make([]kernel.UUID, 0, len(cartLines))
	for _, line := range cartLines {
		foodIDs = append(foodIDs, line.FoodID())
	}

	items, err := uow.FoodRepository().GetByIDs(ctx, foodIDs)
	if err != nil {
		return err
	}

	itemsByID := make(map[kernel.UUID]*food.Food, len(items))
	for _, item := range items {
		itemsByID[item.ID()] = item
	}

	var unavailable []UnavailableItem
	orderLines := make([]order.Line, 0, len(cartLines))
	for _, cartLine := range cartLines {
		item, ok := itemsByID[cartLine.FoodID()]
		if !ok {
			unavailable = append(unavailable, UnavailableItem{FoodID: cartLine.FoodID()})
			continue
		}
		if !item.IsAvailable() {
			unavailable = append(unavailable, UnavailableItem{FoodID: item.ID(), Name: item.Name()})
			continue
		}

		orderLine, err := order.NewLine(cartLine.ID(), item.ID(), cartLine.Quantity(), item.Price())
		if err != nil {
			return err
		}

		orderLines = append(orderLines, orderLine)
	}

	if len(unavailable) > 0 {
		return &UnavailableItemsError{Items: unavailable}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), orderLines, time.Now())
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err := cartRepo.Clear(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
