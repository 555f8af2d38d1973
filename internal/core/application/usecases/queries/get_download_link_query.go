package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrGetDownloadLinkQueryIsNotConstructed = errors.New(
	"GetDownloadLinkQuery must be created via NewGetDownloadLinkQuery constructor",
)

// GetDownloadLinkQuery asks for a fresh download link of a digital product.
type GetDownloadLinkQuery struct {
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDownloadLinkQuery(productID kernel.ID) (GetDownloadLinkQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetDownloadLinkQuery{}, err
	}

	return GetDownloadLinkQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetDownloadLinkQuery) Validate() error {
	return q.guard.Validate(ErrGetDownloadLinkQueryIsNotConstructed)
}

func (q GetDownloadLinkQuery) ProductID() kernel.ID {
	return q.productID
}
