// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The total and the line prices are frozen at placement; later menu edits
// never touch these rows.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status     string
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one frozen order line.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	FoodID   uuid.UUID `gorm:"type:uuid"`
	Quantity int
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		items = append(items, OrderItemDTO{
			ID:       line.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			FoodID:   line.FoodID().Bytes(),
			Quantity: line.Quantity(),
			Price:    line.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID().Bytes(),
		TotalPrice: aggregate.Total().Decimal(),
		Status:     aggregate.Status().String(),
		Items:      items,
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including frozen lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewPrice(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		line, err := lineToDomain(item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, userID, lines, total, status, dto.CreatedAt)
}

func lineToDomain(dto OrderItemDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return order.Line{}, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(id, foodID, dto.Quantity, price)
}
