// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// A cart has no row of its own: it is the set of cart_items rows owned by a
// user, reconstructed into the cart aggregate on read.
package cartrepo

import (
	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartItemDTO represents one cart line in the database.
// The composite unique index backs the one-line-per-food invariant.
type CartItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_cart_user_food"`
	FoodID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_food"`
	Quantity int
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// lineFromDomain converts a cart line to its database representation.
func lineFromDomain(userID kernel.UUID, line *cart.Line) CartItemDTO {
	return CartItemDTO{
		ID:       line.ID().Bytes(),
		UserID:   userID.Bytes(),
		FoodID:   line.FoodID().Bytes(),
		Quantity: line.Quantity(),
	}
}

// lineToDomain converts a database DTO to a cart line.
func lineToDomain(dto CartItemDTO) (*cart.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}

	return cart.NewLine(id, foodID, dto.Quantity)
}
