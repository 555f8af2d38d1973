package productrepo

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
)

// MemoryProductRepository implements ports.ProductRepository on a Table.
type MemoryProductRepository struct {
	table   *Table
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewMemoryProductRepository(table *Table, tracker aggregateTracker) *MemoryProductRepository {
	return &MemoryProductRepository{
		table:   table,
		tracker: tracker,
	}
}

// Add stores a new product and assigns the generated id to it.
func (r *MemoryProductRepository) Add(_ context.Context, p product.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.ID().IsZero() {
		return fmt.Errorf("add product %s: %w", p.ID(), kernel.ErrIDIsAlreadyAssigned)
	}

	dto, err := fromDomain(p)
	if err != nil {
		return err
	}

	saved := r.table.Save(dto)
	if err = p.AssignID(kernel.ID(saved.ID)); err != nil {
		return errors.Join(err, r.table.Delete(saved.ID))
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *MemoryProductRepository) Update(_ context.Context, p product.Product) error {
	if p == nil {
		return errs.NewValueIsRequiredError("product")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(p)
	if err != nil {
		return err
	}
	if err = r.table.Update(dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.Delete(id.Int64())
}

func (r *MemoryProductRepository) Get(_ context.Context, id kernel.ID) (product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.table.FindByID(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	return toDomain(dto)
}

func (r *MemoryProductRepository) GetAll(_ context.Context) ([]product.Product, error) {
	return mapAll(r.table.FindAll())
}

func (r *MemoryProductRepository) Count(_ context.Context) (int, error) {
	return r.table.Count(), nil
}

func mapAll(dtos []ProductDTO) ([]product.Product, error) {
	products := make([]product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
