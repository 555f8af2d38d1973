package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/user"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type GetStatisticsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetStatisticsQueryHandler(uowFactory ReadUoWFactory) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{uowFactory: uowFactory}
}

func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (StatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatisticsResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return StatisticsResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}
	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}
	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return StatisticsResponse{}, err
	}

	byStatus := make(map[string]int, len(order.Statuses()))
	for _, status := range order.Statuses() {
		byStatus[status.String()] = 0
	}
	for _, o := range orders {
		byStatus[o.Status().String()]++
	}

	return StatisticsResponse{
		Products: len(products),
		PhysicalProducts: lo.CountBy(products, func(p product.Product) bool {
			return p.Kind() == product.KindPhysical
		}),
		DigitalProducts: lo.CountBy(products, func(p product.Product) bool {
			return p.Kind() == product.KindDigital
		}),
		Users: len(users),
		Customers: lo.CountBy(users, func(u user.User) bool {
			return u.Role() == user.RoleCustomer
		}),
		Admins: lo.CountBy(users, func(u user.User) bool {
			return u.Role() == user.RoleAdmin
		}),
		Orders:         len(orders),
		OrdersByStatus: byStatus,
		Revenue:        Revenue(orders),
	}, nil
}

// Revenue sums the totals of delivered orders. Every other status is excluded.
func Revenue(orders []*order.Order) decimal.Decimal {
	delivered := lo.Filter(orders, func(o *order.Order, _ int) bool {
		return o.Status() == order.Delivered
	})
	return lo.Reduce(delivered, func(sum decimal.Decimal, o *order.Order, _ int) decimal.Decimal {
		return sum.Add(o.Total())
	}, decimal.Zero)
}
