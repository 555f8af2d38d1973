package commands

import (
	"context"

	"ecommerce/internal/core/domain/services"
)

type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle reserves stock for the item and returns the line it was stored under.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (int, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	item, err := allocate(ctx, h.allocator, uow.ProductRepository(), o, ItemRequest{
		ProductID: cmd.ProductID(),
		Quantity:  cmd.Quantity(),
	})
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.Line(), nil
}
