package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// CreateDigitalProductCommandHandler adds a digital product to the catalog.
type CreateDigitalProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateDigitalProductCommandHandler(uowFactory ProductUoWFactory) CreateDigitalProductCommandHandler {
	return CreateDigitalProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDigitalProductCommandHandler) Handle(ctx context.Context, cmd CreateDigitalProductCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	p, err := product.NewDigital(cmd.Info(), cmd.Asset(), time.Now())
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
