package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its lines.
// Line prices are the values frozen at placement, not current menu prices.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to fetch one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderLineResponse represents one frozen order line in the read model.
type OrderLineResponse struct {
	FoodID   kernel.UUID
	FoodName string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}

// OrderResponse represents an order with its lines in the read model.
type OrderResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Total     decimal.Decimal
	Status    string
	Lines     []OrderLineResponse
	CreatedAt time.Time
}
