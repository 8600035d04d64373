package queries

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a user's order history from the database.
// Returns order summaries without lines; individual orders carry their lines
// through GetOrderQuery.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query to fetch a user's orders, newest first.
// The user must exist; a user with no orders gets an empty list.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var userCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM users WHERE id = ?
	`, query.UserID().Bytes()).Scan(&userCount).Error
	if err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			total_price,
			status,
			created_at
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var response OrderResponse
		var id, userID uuid.UUID

		err = rows.Scan(
			&id,
			&userID,
			&response.Total,
			&response.Status,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		response.UserID, err = kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
