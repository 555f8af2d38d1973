package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// CreatePhysicalProductCommandHandler adds a physical product to the catalog.
type CreatePhysicalProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreatePhysicalProductCommandHandler(uowFactory ProductUoWFactory) CreatePhysicalProductCommandHandler {
	return CreatePhysicalProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the product and returns the id assigned by storage.
func (h CreatePhysicalProductCommandHandler) Handle(ctx context.Context, cmd CreatePhysicalProductCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := product.NewPhysical(cmd.Info(), cmd.Dimensions(), cmd.Stock(), time.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return p.ID(), nil
}
