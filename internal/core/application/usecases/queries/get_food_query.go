package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetFoodQueryIsNotConstructed = errors.New(
		"GetFoodQuery must be created via NewGetFoodQuery constructor",
	)
)

// GetFoodQuery retrieves a single menu item by ID.
// Unlike the listing, an unavailable item is still returned here so its
// availability can be inspected.
type GetFoodQuery struct { //nolint:recvcheck //using for validation
	foodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFoodQuery creates a query to fetch one menu item.
func NewGetFoodQuery(foodID kernel.UUID) (GetFoodQuery, error) {
	query := GetFoodQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFoodID(foodID); err != nil {
		return GetFoodQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFoodQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodQueryIsNotConstructed)
}

// FoodID returns the menu item to fetch.
func (q GetFoodQuery) FoodID() kernel.UUID {
	return q.foodID
}

func (q *GetFoodQuery) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}

	q.foodID = foodID
	return nil
}
