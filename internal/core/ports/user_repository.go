// Package ports defines repository interfaces for the kitchen domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/account"
	"kitchen/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	// The user must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user aggregate by email address.
	// Used to detect duplicate registrations before creating a new account.
	GetByEmail(ctx context.Context, email string) (*account.User, error)

	// GetByPhone retrieves a user aggregate by phone number.
	GetByPhone(ctx context.Context, phone string) (*account.User, error)
}
