package userrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *account.User) error {
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

// Update saves an existing user to the database.
// All columns are written so that clearing the verification code persists.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *account.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by email address.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPhone retrieves a user by phone number.
func (r *GormUserRepository) GetByPhone(ctx context.Context, phone string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("phone", phone)
		}
		return nil, err
	}

	return toDomain(dto)
}
