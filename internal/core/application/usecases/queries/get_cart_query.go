package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a user's cart joined against the live menu.
// Prices and availability are read at query time, not from when the items
// were added, so the response reflects what placing the order would cost
// right now.
//
// Example:
//
//	query, _ := NewGetCartQuery(userID)
//	handler := NewGetCartQueryHandler(db)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve cart: %w", err)
//	}
//	if cart.UnavailableCount > 0 {
//	    fmt.Printf("%d item(s) in the cart are now unavailable\n", cart.UnavailableCount)
//	}
type GetCartQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query to fetch a user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetCartQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// CartLineResponse represents one cart line joined with its menu item.
type CartLineResponse struct {
	LineID    kernel.UUID
	FoodID    kernel.UUID
	FoodName  string
	Category  string
	Price     decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
	Available bool
}

// CartResponse represents the whole cart read model.
// Total sums the subtotals of every line, available or not.
type CartResponse struct {
	UserID           kernel.UUID
	Lines            []CartLineResponse
	Total            decimal.Decimal
	UnavailableCount int
}
