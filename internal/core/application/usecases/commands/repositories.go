// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SerializableTxManager handles transactions that must run at
	// serializable isolation, such as order placement.
	SerializableTxManager interface {
		BeginSerializable(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// FoodRepoFactory provides access to the food repository within a transaction.
	FoodRepoFactory interface {
		FoodRepository() ports.FoodRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// FoodUoW manages transactions for catalog-only operations.
	FoodUoW interface {
		TxManager
		FoodRepoFactory
	}

	// FoodUoWFactory creates new catalog unit of work instances.
	FoodUoWFactory interface {
		Create() FoodUoW
	}

	// CartUoW manages transactions for cart operations.
	// Adding an item also checks the account and the catalog, so all three
	// repositories are exposed.
	CartUoW interface {
		TxManager
		UserRepoFactory
		CartRepoFactory
		FoodRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages the order placement transaction, which spans the
	// account, catalog, cart and order aggregates and runs serializable.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.BeginSerializable(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   cartRepo := uow.CartRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		SerializableTxManager
		UserRepoFactory
		FoodRepoFactory
		CartRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates new unit of work instances for order placement.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}
)
