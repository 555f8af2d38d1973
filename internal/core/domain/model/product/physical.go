package product

import (
	"errors"
	"fmt"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPhysicalIsNotConstructed = errors.New("physical product must be created via NewPhysical or RestorePhysical")

// Physical is a shippable catalog entry with a stock count.
type Physical struct {
	entry

	dimensions Dimensions
	stock      int
}

// NewPhysical creates an available physical product without identity.
func NewPhysical(info Info, dimensions Dimensions, stock int, createdAt time.Time) (*Physical, error) {
	e, entryErr := newEntry(info, createdAt)
	if err := errors.Join(entryErr, dimensions.Validate(), validateStock(stock)); err != nil {
		return nil, err
	}

	return &Physical{
		entry:      e,
		dimensions: dimensions,
		stock:      stock,
	}, nil
}

// RestorePhysical rebuilds a stored physical product.
func RestorePhysical(
	id kernel.ID,
	info Info,
	createdAt time.Time,
	available bool,
	dimensions Dimensions,
	stock int,
) (*Physical, error) {
	e, entryErr := restoreEntry(id, info, createdAt, available)
	if err := errors.Join(entryErr, dimensions.Validate(), validateStock(stock)); err != nil {
		return nil, err
	}

	return &Physical{
		entry:      e,
		dimensions: dimensions,
		stock:      stock,
	}, nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than zero", quantity))
	}
	return nil
}

func (p *Physical) Kind() Kind {
	return KindPhysical
}

func (p *Physical) Dimensions() Dimensions {
	return p.dimensions
}

func (p *Physical) Stock() int {
	return p.stock
}

// InStock reports whether at least one unit is on hand.
func (p *Physical) InStock() bool {
	return p.stock > 0
}

// HasStock reports whether quantity units can be taken.
func (p *Physical) HasStock(quantity int) bool {
	return p.stock >= quantity
}

// ReduceStock takes quantity units, failing with an InsufficientStockError
// rather than going below zero.
func (p *Physical) ReduceStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if !p.HasStock(quantity) {
		return errs.NewInsufficientStockError(p.id, quantity, p.stock)
	}

	p.stock -= quantity
	return nil
}

// AddStock puts quantity units back on hand.
func (p *Physical) AddStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	p.stock += quantity
	return nil
}

func (p *Physical) ShippingCost() decimal.Decimal {
	return p.dimensions.ShippingCost()
}

func (p *Physical) Validate() error {
	if p == nil {
		return ErrPhysicalIsNotConstructed
	}
	return p.entry.Validate()
}
