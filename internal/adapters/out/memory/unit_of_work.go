package memory

import (
	"context"
	"errors"
	"log/slog"

	"ecommerce/internal/adapters/out/memory/orderrepo"
	"ecommerce/internal/adapters/out/memory/productrepo"
	"ecommerce/internal/adapters/out/memory/userrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// trackedAggregate represents an aggregate stored during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// UnitOfWorkFactory creates unit of work instances over one Database.
type UnitOfWorkFactory struct {
	db     *Database
	logger *slog.Logger
}

func NewUnitOfWorkFactory(db *Database, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		db:     db,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create returns a new UnitOfWork. Instances must not be shared between goroutines.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		db:     f.db,
		logger: f.logger,
	}
}

// UnitOfWork is a transaction over the Database. Repositories obtained from it
// must only be used between Begin and Commit or Rollback.
type UnitOfWork struct {
	db                *Database
	logger            *slog.Logger
	active            bool
	trackedAggregates []trackedAggregate
}

// Begin waits for the database lock. Calling it again on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.db.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit keeps the changes and releases the lock.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.db.release(true)
	uow.active = false

	if len(uow.trackedAggregates) > 0 {
		uow.logger.DebugContext(ctx, "unit of work committed", "aggregates", len(uow.trackedAggregates))
	}
	return nil
}

// Rollback undoes the changes and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.db.release(false)
	uow.active = false
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewMemoryProductRepository(uow.db.products, uow)
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewMemoryUserRepository(uow.db.users, uow)
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow.db.orders, uow)
}

// TrackAggregate is called by the repositories for every aggregate they store.
func (uow *UnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the ids of the aggregates stored since Begin.
func (uow *UnitOfWork) TrackedAggregates() []kernel.ID {
	ids := make([]kernel.ID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}
