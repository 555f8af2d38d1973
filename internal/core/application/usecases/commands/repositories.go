// Package commands contains the business operations that modify shop state.
// Every command follows the same pattern: validation in the constructor, then a
// handler that runs inside one unit of work and commits only on success.
package commands

import (
	"context"

	"ecommerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest one that covers the repositories it uses.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UserUoW manages transactions for account operations. Orders are reachable
	// because deleting a customer depends on them.
	UserUoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW manages transactions across products, users and orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   p, err := uow.ProductRepository().Get(ctx, productID)
	//   // ... reserve stock, update both
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		UserRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
