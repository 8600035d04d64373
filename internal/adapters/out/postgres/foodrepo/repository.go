package foodrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/food"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFoodRepository implements FoodRepository using GORM.
type GormFoodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFoodRepository creates a new GORM food repository.
func NewGormFoodRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodRepository {
	return &GormFoodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item to the database.
func (r *GormFoodRepository) Add(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing menu item to the database.
// All columns are written so that availability flips and cleared
// descriptions persist.
func (r *GormFoodRepository) Update(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FoodDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a menu item from the database.
func (r *GormFoodRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FoodDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("food", id.String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormFoodRepository) Get(ctx context.Context, id kernel.UUID) (*food.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a menu item by its exact name.
func (r *GormFoodRepository) GetByName(ctx context.Context, name string) (*food.Food, error) {
	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the menu items for the given identifiers.
// Missing identifiers are absent from the result.
func (r *GormFoodRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*food.Food, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []FoodDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make([]*food.Food, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
