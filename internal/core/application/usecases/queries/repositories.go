// Package queries contains the read operations of the shop.
// Every query opens a unit of work only to read a consistent snapshot and
// always rolls it back. Handlers return read models, never aggregates.
package queries

import (
	"context"

	"ecommerce/internal/core/ports"
)

type (
	// ReadTx is the part of a unit of work a query needs.
	ReadTx interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductReadUoW interface {
		ReadTx
		ProductRepository() ports.ProductRepository
	}

	ProductReadUoWFactory interface {
		Create() ProductReadUoW
	}

	UserReadUoW interface {
		ReadTx
		UserRepository() ports.UserRepository
	}

	UserReadUoWFactory interface {
		Create() UserReadUoW
	}

	OrderReadUoW interface {
		ReadTx
		OrderRepository() ports.OrderRepository
	}

	OrderReadUoWFactory interface {
		Create() OrderReadUoW
	}

	// ReadUoW reads the whole store. Used by reports.
	ReadUoW interface {
		ReadTx
		ProductRepository() ports.ProductRepository
		UserRepository() ports.UserRepository
		OrderRepository() ports.OrderRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)
