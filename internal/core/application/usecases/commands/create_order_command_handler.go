package commands

import (
	"context"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/core/domain/services"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"
)

// CreateOrderCommandHandler opens a PENDING order for a customer. Requested
// items are reserved one by one; if any of them fails the whole order is
// discarded and no stock is taken.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
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

	if err := ensureCustomer(ctx, uow.UserRepository(), cmd.CustomerID()); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.PaymentMethod(), time.Now())
	if err != nil {
		return 0, err
	}

	productRepo := uow.ProductRepository()
	for i, request := range cmd.Items() {
		if _, err = allocate(ctx, h.allocator, productRepo, o, request); err != nil {
			return 0, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}

func ensureCustomer(ctx context.Context, userRepo ports.UserRepository, id kernel.ID) error {
	u, err := userRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if u.Role() != user.RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("user %s is %s", id, u.Role()))
	}
	return nil
}

// allocate reserves one requested item on o and persists the product whose
// stock changed.
func allocate(
	ctx context.Context,
	allocator services.StockAllocator,
	productRepo ports.ProductRepository,
	o *order.Order,
	request ItemRequest,
) (order.Item, error) {
	p, err := productRepo.Get(ctx, request.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	item, err := allocator.Allocate(o, p, request.Quantity)
	if err != nil {
		return order.Item{}, err
	}

	if item.IsPhysical() {
		if err = productRepo.Update(ctx, p); err != nil {
			return order.Item{}, err
		}
	}

	return item, nil
}
