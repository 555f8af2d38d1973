package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
type OrderRepository interface {
	// Add stores a new order and assigns its identity through AssignID.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order, items included.
	Update(ctx context.Context, aggregate *order.Order) error

	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the complete order with its items, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll returns every order ordered by id.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// FindByCustomer returns the orders placed by a customer, ordered by id.
	// An unknown customer yields an empty slice.
	FindByCustomer(ctx context.Context, customerID kernel.ID) ([]*order.Order, error)

	Count(ctx context.Context) (int, error)
}
