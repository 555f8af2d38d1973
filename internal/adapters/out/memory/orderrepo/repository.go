package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository on a Table.
type MemoryOrderRepository struct {
	table   *Table
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewMemoryOrderRepository(table *Table, tracker aggregateTracker) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		table:   table,
		tracker: tracker,
	}
}

// Add stores a new order and assigns the generated id to it.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.ID().IsZero() {
		return fmt.Errorf("add order %s: %w", aggregate.ID(), kernel.ErrIDIsAlreadyAssigned)
	}

	saved := r.table.Save(fromDomain(aggregate))
	if err := aggregate.AssignID(kernel.ID(saved.ID)); err != nil {
		return errors.Join(err, r.table.Delete(saved.ID))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, its items included.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.table.Update(fromDomain(aggregate)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryOrderRepository) Delete(_ context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.Delete(id.Int64())
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.table.FindByID(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return toDomain(dto)
}

func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	return mapAll(r.table.FindAll())
}

// FindByCustomer retrieves the orders of one customer.
func (r *MemoryOrderRepository) FindByCustomer(_ context.Context, customerID kernel.ID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return mapAll(r.table.FindBy(func(dto OrderDTO) bool {
		return dto.CustomerID == customerID.Int64()
	}))
}

func (r *MemoryOrderRepository) Count(_ context.Context) (int, error) {
	return r.table.Count(), nil
}

func mapAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
