// Package foodrepo provides data transfer objects and mapping functions for menu persistence.
package foodrepo

import (
	"time"

	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodDTO represents the database structure for persisting menu items.
// The unique index on name enforces menu-wide name uniqueness at the
// storage level, backing the handler-level pre-check.
type FoodDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Category    string          `gorm:"index"`
	IsAvailable bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for menu items.
func (FoodDTO) TableName() string {
	return "foods"
}

// fromDomain converts a food domain aggregate to its database representation.
func fromDomain(aggregate *food.Food) FoodDTO {
	return FoodDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		Category:    aggregate.Category(),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a food domain aggregate.
func toDomain(dto FoodDTO) (*food.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return food.RestoreFood(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.IsAvailable,
		dto.CreatedAt,
	)
}
