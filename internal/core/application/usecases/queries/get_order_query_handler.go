package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to fetch one order by ID.
// Food names come from a left join: a line whose menu item was deleted
// keeps its frozen price and quantity but loses the name.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			total_price,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var response OrderResponse
	var id, userID uuid.UUID
	err := row.Scan(
		&id,
		&userID,
		&response.Total,
		&response.Status,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	lines, err := h.orderLines(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Lines = lines

	return response, nil
}

func (h GetOrderQueryHandler) orderLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_items.food_id,
			foods.name,
			order_items.quantity,
			order_items.price
		FROM order_items
		LEFT JOIN foods ON order_items.food_id = foods.id
		WHERE order_items.order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		var foodID uuid.UUID
		var foodName sql.NullString

		err = rows.Scan(
			&foodID,
			&foodName,
			&line.Quantity,
			&line.Price,
		)
		if err != nil {
			return nil, err
		}

		line.FoodID, err = kernel.UUIDFromBytes(foodID[:])
		if err != nil {
			return nil, err
		}
		line.FoodName = foodName.String
		line.Subtotal = line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
