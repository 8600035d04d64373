package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// BeginSerializable starts a new database transaction at serializable
	// isolation. Used by order placement, which reads the cart and the menu
	// and must not race with concurrent availability or cart changes.
	BeginSerializable(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// FoodRepository returns a FoodRepository bound to the current transaction.
	FoodRepository() FoodRepository

	// CartRepository returns a CartRepository bound to the current transaction.
	CartRepository() CartRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}
