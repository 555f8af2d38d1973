package commands

import (
	"context"
	"fmt"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
)

// RestockProductCommandHandler increases the stock of a physical product.
// Digital products are rejected with a validation error.
type RestockProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewRestockProductCommandHandler(uowFactory ProductUoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stock after the restock.
func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	physical, ok := p.(*product.Physical)
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%s is %s and has no stock", cmd.ProductID(), p.Kind()),
		)
	}

	if err = physical.AddStock(cmd.Quantity()); err != nil {
		return 0, err
	}

	if err = productRepo.Update(ctx, physical); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return physical.Stock(), nil
}
