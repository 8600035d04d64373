// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetFoodsQueryIsNotConstructed = errors.New(
		"GetFoodsQuery must be created via NewGetFoodsQuery constructor",
	)
)

// GetFoodsQuery retrieves the available part of the menu, optionally
// narrowed to one category. Unavailable items never appear in listings;
// they stay reachable by ID.
//
// Example:
//
//	query := NewGetFoodsQuery("mains")
//	handler := NewGetFoodsQueryHandler(db)
//
//	foods, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve menu: %w", err)
//	}
type GetFoodsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetFoodsQuery creates a query to list available menu items.
// An empty category means no category filter.
func NewGetFoodsQuery(category string) GetFoodsQuery {
	return GetFoodsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodsQueryIsNotConstructed)
}

// Category returns the category filter, or "" when none was given.
func (q GetFoodsQuery) Category() string {
	return q.category
}

// FoodResponse represents one menu item in the read model.
type FoodResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
}
