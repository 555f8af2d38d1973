package queries

import (
	"context"
	"fmt"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
)

// GetDownloadLinkQueryHandler builds download links with a new random token
// on every call.
type GetDownloadLinkQueryHandler struct {
	uowFactory ProductReadUoWFactory
	newToken   func() string
}

func NewGetDownloadLinkQueryHandler(uowFactory ProductReadUoWFactory) GetDownloadLinkQueryHandler {
	return GetDownloadLinkQueryHandler{
		uowFactory: uowFactory,
		newToken:   uuid.NewString,
	}
}

// Handle returns a validation error for physical products.
func (h GetDownloadLinkQueryHandler) Handle(ctx context.Context, query GetDownloadLinkQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ProductRepository().Get(ctx, query.ProductID())
	if err != nil {
		return "", err
	}

	digital, ok := p.(*product.Digital)
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%s is %s and has no download", p.ID(), p.Kind()),
		)
	}

	return digital.DownloadLink(h.newToken())
}
