package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/order"

	"github.com/samber/lo"
)

type ListOrdersQueryHandler struct {
	uowFactory OrderReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory OrderReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matching orders ordered by id.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		orders []*order.Order
		err    error
	)
	if customerID, ok := query.CustomerID(); ok {
		orders, err = uow.OrderRepository().FindByCustomer(ctx, customerID)
	} else {
		orders, err = uow.OrderRepository().GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if status, ok := query.Status(); ok {
		orders = lo.Filter(orders, func(o *order.Order, _ int) bool {
			return o.Status() == status
		})
	}

	return lo.Map(orders, func(o *order.Order, _ int) OrderResponse {
		return newOrderResponse(o)
	}), nil
}
