package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/product"

	"github.com/samber/lo"
)

type ListProductsQueryHandler struct {
	uowFactory ProductReadUoWFactory
}

func NewListProductsQueryHandler(uowFactory ProductReadUoWFactory) ListProductsQueryHandler {
	return ListProductsQueryHandler{uowFactory: uowFactory}
}

// Handle returns the matching products ordered by id. No match yields an empty slice.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
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

	products, err := uow.ProductRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matching := lo.Filter(products, func(p product.Product, _ int) bool {
		return query.matches(p)
	})

	return lo.Map(matching, func(p product.Product, _ int) ProductResponse {
		return newProductResponse(p)
	}), nil
}
