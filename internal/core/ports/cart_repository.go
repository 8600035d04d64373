package ports

import (
	"context"

	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// A cart is identified by its owner: each user has at most one cart,
// materialized lazily as an empty cart when no lines exist.
type CartRepository interface {
	// GetByUser retrieves the cart for the given user.
	// Returns an empty cart when the user has no stored lines.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// SaveLine persists a single cart line, inserting or updating as needed.
	SaveLine(ctx context.Context, userID kernel.UUID, line *cart.Line) error

	// DeleteLine removes a single cart line by its identifier.
	DeleteLine(ctx context.Context, userID kernel.UUID, lineID kernel.UUID) error

	// Clear removes all cart lines for the given user.
	Clear(ctx context.Context, userID kernel.UUID) error
}
