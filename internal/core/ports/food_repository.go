package ports

import (
	"context"

	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
)

// FoodRepository defines the persistence contract for food aggregates.
type FoodRepository interface {
	// Add persists a new food aggregate to storage.
	// The food must be valid and its name must be unique across the menu.
	Add(ctx context.Context, aggregate *food.Food) error

	// Update persists changes to an existing food aggregate.
	Update(ctx context.Context, aggregate *food.Food) error

	// Delete removes a food aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a food aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*food.Food, error)

	// GetByName retrieves a food aggregate by its exact name.
	// Used to enforce menu name uniqueness before creating a new item.
	GetByName(ctx context.Context, name string) (*food.Food, error)

	// GetByIDs retrieves the food aggregates for the given identifiers.
	// Missing identifiers are simply absent from the result, not an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*food.Food, error)
}
