// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NotificationRepoFactory provides access to notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// CatalogFactory provides access to the product catalog within a transaction.
	CatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// DirectoryFactory provides access to the business and courier directory within a transaction.
	DirectoryFactory interface {
		Directory() ports.Directory
	}

	// CartRepoFactory provides access to cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// TrackingRepoFactory provides access to delivery tracking within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// UoW manages transactions across every aggregate of the engine.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   catalog := uow.ProductCatalog()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
		CatalogFactory
		DirectoryFactory
		CartRepoFactory
		TrackingRepoFactory
	}

	// UoWFactory creates a fresh unit of work per command (and per retry attempt).
	UoWFactory interface {
		Create() UoW
	}
)

// UoWFactoryFrom adapts a ports.UnitOfWorkFactory to the command layer.
func UoWFactoryFrom(factory ports.UnitOfWorkFactory) UoWFactory {
	return portsFactory{factory: factory}
}

type portsFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f portsFactory) Create() UoW {
	return f.factory.Create()
}
