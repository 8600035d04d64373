package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart contents joined with live menu data.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query to fetch a user's cart.
// The user must exist; an empty cart is a valid response with no lines.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	var userCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM users WHERE id = ?
	`, query.UserID().Bytes()).Scan(&userCount).Error
	if err != nil {
		return CartResponse{}, err
	}
	if userCount == 0 {
		return CartResponse{}, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cart_items.id,
			cart_items.quantity,
			foods.id,
			foods.name,
			foods.category,
			foods.price,
			foods.is_available
		FROM cart_items
		JOIN foods ON cart_items.food_id = foods.id
		WHERE cart_items.user_id = ?
		ORDER BY foods.name
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	response := CartResponse{
		UserID: query.UserID(),
		Lines:  make([]CartLineResponse, 0),
		Total:  decimal.Zero,
	}

	for rows.Next() {
		var line CartLineResponse
		var lineID, foodID uuid.UUID

		err = rows.Scan(
			&lineID,
			&line.Quantity,
			&foodID,
			&line.FoodName,
			&line.Category,
			&line.Price,
			&line.Available,
		)
		if err != nil {
			return CartResponse{}, err
		}

		line.LineID, err = kernel.UUIDFromBytes(lineID[:])
		if err != nil {
			return CartResponse{}, err
		}
		line.FoodID, err = kernel.UUIDFromBytes(foodID[:])
		if err != nil {
			return CartResponse{}, err
		}

		line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		response.Total = response.Total.Add(line.Subtotal)
		if !line.Available {
			response.UnavailableCount++
		}

		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return response, nil
}
