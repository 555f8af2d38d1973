package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"
)

// RemoveOrderItemCommandHandler drops a line from an editable order and gives
// its physical stock back. A product deleted from the catalog in the meantime
// is skipped.
type RemoveOrderItemCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

func NewRemoveOrderItemCommandHandler(uowFactory UoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ValidateEditable(); err != nil {
		return err
	}

	item, ok := o.Item(cmd.Line())
	if !ok {
		return errs.NewObjectNotFoundError("order item", cmd.Line())
	}

	productRepo := uow.ProductRepository()
	var p product.Product
	if item.IsPhysical() {
		p, err = productRepo.Get(ctx, item.ProductID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if _, err = h.allocator.RemoveLine(o, cmd.Line(), p); err != nil {
		return err
	}

	if p != nil {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
