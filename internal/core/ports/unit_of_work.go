package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the whole store.
// While it is open no other unit of work can read or write.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin opens the transaction, waiting for the store until ctx is done.
	Begin(ctx context.Context) error

	// Commit keeps every change made since Begin.
	// Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback undoes every change made since Begin.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository

	UserRepository() UserRepository

	OrderRepository() OrderRepository
}
