// Package memory implements the storage ports on in-process tables.
//
// A Database owns one table per entity type and a single lock. Each unit of
// work holds the lock from Begin to Commit or Rollback, so operations are
// serialized and a failed operation is undone as a whole.
//
// Usage:
//
//	db := memory.NewDatabase()
//	factory := memory.NewUnitOfWorkFactory(db, logger)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"fmt"

	"ecommerce/internal/adapters/out/memory/orderrepo"
	"ecommerce/internal/adapters/out/memory/productrepo"
	"ecommerce/internal/adapters/out/memory/store"
	"ecommerce/internal/adapters/out/memory/userrepo"
)

// Database is the process-wide store. Its content lives as long as the process.
type Database struct {
	lock    chan struct{}
	journal *store.Journal

	products *productrepo.Table
	users    *userrepo.Table
	orders   *orderrepo.Table
}

func NewDatabase() *Database {
	journal := store.NewJournal()
	return &Database{
		lock:     make(chan struct{}, 1),
		journal:  journal,
		products: productrepo.NewTable(journal),
		users:    userrepo.NewTable(journal),
		orders:   orderrepo.NewTable(journal),
	}
}

// acquire takes the lock and opens the journal. It gives up when ctx is done.
func (db *Database) acquire(ctx context.Context) error {
	select {
	case db.lock <- struct{}{}:
		db.journal.Begin()
		return nil
	case <-ctx.Done():
		return fmt.Errorf("acquire database lock: %w", ctx.Err())
	}
}

func (db *Database) release(commit bool) {
	if commit {
		db.journal.Commit()
	} else {
		db.journal.Rollback()
	}
	<-db.lock
}
