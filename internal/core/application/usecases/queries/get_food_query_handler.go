package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFoodQueryHandler retrieves one menu item from the database.
type GetFoodQueryHandler struct {
	db *gorm.DB
}

// NewGetFoodQueryHandler creates a handler for single menu item queries.
func NewGetFoodQueryHandler(db *gorm.DB) GetFoodQueryHandler {
	return GetFoodQueryHandler{db: db}
}

// Handle executes the query to fetch one menu item by ID.
func (h GetFoodQueryHandler) Handle(ctx context.Context, query GetFoodQuery) (FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return FoodResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			category,
			is_available
		FROM foods
		WHERE id = ?
	`, query.FoodID().Bytes()).Row()

	var item FoodResponse
	var id uuid.UUID
	err := row.Scan(
		&id,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return FoodResponse{}, errs.NewObjectNotFoundError("foodId", query.FoodID())
	}
	if err != nil {
		return FoodResponse{}, err
	}

	foodID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return FoodResponse{}, err
	}
	item.ID = foodID

	return item, nil
}
