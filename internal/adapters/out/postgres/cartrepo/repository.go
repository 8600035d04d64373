package cartrepo

import (
	"context"

	"kitchen/internal/core/domain/model/cart"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByUser retrieves the cart for the given user.
// A user with no stored lines gets an empty cart.
func (r *GormCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "user_id = ?", userID.Bytes()).Error; err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(userID, lines)
}

// SaveLine persists a single cart line, inserting a new row or updating the
// quantity of an existing one.
func (r *GormCartRepository) SaveLine(ctx context.Context, userID kernel.UUID, line *cart.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(userID, line)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(userID, line)
	return nil
}

// DeleteLine removes a single cart line scoped to its owner.
func (r *GormCartRepository) DeleteLine(ctx context.Context, userID, lineID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if err := lineID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "id = ? AND user_id = ?", lineID.Bytes(), userID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartLineId", lineID.String())
	}

	return nil
}

// Clear removes all cart lines for the given user.
// Clearing an empty cart succeeds.
func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&CartItemDTO{}, "user_id = ?", userID.Bytes()).Error
}
