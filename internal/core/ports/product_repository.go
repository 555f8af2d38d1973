// Package ports defines the storage contracts of the shop domain.
// Adapters implement them and use cases depend on them only.
package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// ProductRepository defines the storage contract for catalog products of every kind.
type ProductRepository interface {
	// Add stores a new product and assigns its identity through AssignID.
	// The product must be valid and must not have an identity yet.
	Add(ctx context.Context, p product.Product) error

	// Update replaces the stored state of an existing product.
	// Returns an ObjectNotFoundError when the id is unknown.
	Update(ctx context.Context, p product.Product) error

	// Delete removes a product. Orders keep their item snapshots.
	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the product with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (product.Product, error)

	// GetAll returns every product ordered by id.
	GetAll(ctx context.Context) ([]product.Product, error)

	Count(ctx context.Context) (int, error)
}
