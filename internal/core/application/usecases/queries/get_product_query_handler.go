package queries

import (
	"context"
)

type GetProductQueryHandler struct {
	uowFactory ProductReadUoWFactory
}

func NewGetProductQueryHandler(uowFactory ProductReadUoWFactory) GetProductQueryHandler {
	return GetProductQueryHandler{uowFactory: uowFactory}
}

// Handle returns the product or an ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProductResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}

	return newProductResponse(p), nil
}
