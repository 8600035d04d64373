package queries

import (
	"context"
	"database/sql"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFoodsQueryHandler retrieves available menu items from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetFoodsQueryHandler struct {
	db *gorm.DB
}

// NewGetFoodsQueryHandler creates a handler for menu listing queries.
// Requires a GORM database connection for query execution.
func NewGetFoodsQueryHandler(db *gorm.DB) GetFoodsQueryHandler {
	return GetFoodsQueryHandler{db: db}
}

// Handle executes the query to list available menu items.
// Returns items sorted by name, filtered to the requested category when one
// was given.
func (h GetFoodsQueryHandler) Handle(ctx context.Context, query GetFoodsQuery) ([]FoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows *sql.Rows
	var err error
	if query.Category() != "" {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				id,
				name,
				description,
				price,
				category,
				is_available
			FROM foods
			WHERE is_available AND category = ?
			ORDER BY name
		`, query.Category()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT
				id,
				name,
				description,
				price,
				category,
				is_available
			FROM foods
			WHERE is_available
			ORDER BY name
		`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := make([]FoodResponse, 0)
	for rows.Next() {
		var item FoodResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.Available,
		)
		if err != nil {
			return nil, err
		}

		foodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = foodID
		foods = append(foods, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
