package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order that is not delivered yet and
// returns the stock of its physical lines. Stock is returned only by the call
// that actually changed the status, and lines whose product no longer exists
// are skipped.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle reports whether the order was cancelled by this call.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !o.Cancel() {
		return false, nil
	}

	productRepo := uow.ProductRepository()
	for _, item := range o.Items() {
		if !item.IsPhysical() {
			continue
		}

		p, err := productRepo.Get(ctx, item.ProductID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}

		if err = h.allocator.Release(item, p); err != nil {
			return false, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return false, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
