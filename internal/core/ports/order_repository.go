package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its lines.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Lines are immutable after placement, so only the order row is updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUser retrieves an order aggregate only if it belongs to the given user.
	// A foreign order is reported as not found rather than as a permission error.
	GetForUser(ctx context.Context, id kernel.UUID, userID kernel.UUID) (*order.Order, error)
}
