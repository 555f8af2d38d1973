package queries

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery filters the catalog. Every filter is optional and they
// combine with AND. Price bounds are inclusive.
//
// Example:
//
//	query, err := NewListProductsQuery(
//	    WithCategory("electronics"),
//	    WithMaxPrice(decimal.NewFromInt(500)),
//	    OnlyAvailable(),
//	)
type ListProductsQuery struct {
	category      string
	minPrice      *decimal.Decimal
	maxPrice      *decimal.Decimal
	onlyAvailable bool
	kind          product.Kind
	maxStock      *int

	guard guard.ConstructorGuard
}

type ListProductsOption func(*ListProductsQuery)

// WithCategory keeps products of category, compared case-insensitively.
func WithCategory(category string) ListProductsOption {
	return func(q *ListProductsQuery) { q.category = strings.TrimSpace(category) }
}

func WithMinPrice(price decimal.Decimal) ListProductsOption {
	return func(q *ListProductsQuery) { q.minPrice = &price }
}

func WithMaxPrice(price decimal.Decimal) ListProductsOption {
	return func(q *ListProductsQuery) { q.maxPrice = &price }
}

func OnlyAvailable() ListProductsOption {
	return func(q *ListProductsQuery) { q.onlyAvailable = true }
}

func WithKind(kind product.Kind) ListProductsOption {
	return func(q *ListProductsQuery) { q.kind = kind }
}

// WithMaxStock keeps physical products whose stock is at most stock.
// Digital products never match.
func WithMaxStock(stock int) ListProductsOption {
	return func(q *ListProductsQuery) { q.maxStock = &stock }
}

func NewListProductsQuery(opts ...ListProductsOption) (ListProductsQuery, error) {
	q := ListProductsQuery{guard: guard.NewConstructorGuard()}
	for _, opt := range opts {
		opt(&q)
	}

	var kindErr, rangeErr, stockErr error
	if q.kind != product.UnknownKind {
		kindErr = q.kind.Validate()
	}
	if q.minPrice != nil && q.maxPrice != nil && q.minPrice.GreaterThan(*q.maxPrice) {
		rangeErr = errs.NewValueIsInvalidErrorWithCause(
			"price range",
			fmt.Errorf("min %s is greater than max %s", q.minPrice, q.maxPrice),
		)
	}
	if q.maxStock != nil && *q.maxStock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("max stock", fmt.Errorf("%d is negative", *q.maxStock))
	}
	if err := errors.Join(kindErr, rangeErr, stockErr); err != nil {
		return ListProductsQuery{}, err
	}

	return q, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) matches(p product.Product) bool {
	if q.category != "" && !strings.EqualFold(p.Category(), q.category) {
		return false
	}
	if q.minPrice != nil && p.Price().LessThan(*q.minPrice) {
		return false
	}
	if q.maxPrice != nil && p.Price().GreaterThan(*q.maxPrice) {
		return false
	}
	if q.onlyAvailable && !p.IsAvailable() {
		return false
	}
	if q.kind != product.UnknownKind && p.Kind() != q.kind {
		return false
	}
	if q.maxStock != nil {
		physical, ok := p.(*product.Physical)
		if !ok || physical.Stock() > *q.maxStock {
			return false
		}
	}
	return true
}
