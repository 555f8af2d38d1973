package product

import (
	"errors"
	"fmt"

	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrDimensionsIsNotConstructed = errors.New("dimensions must be created via NewDimensions")

	// volumetricDivisor converts cm³ to billable kilograms.
	volumetricDivisor = decimal.NewFromInt(6000)
	ratePerKilogram   = decimal.RequireFromString("2.5")
	shippingBaseFee   = decimal.NewFromInt(10)
)

// Dimensions is the weight (kg) and size (cm) of a physical product.
type Dimensions struct {
	weight decimal.Decimal
	length decimal.Decimal
	width  decimal.Decimal
	height decimal.Decimal

	guard guard.ConstructorGuard
}

// NewDimensions validates that no measure is negative.
//
// Example:
//
//	dims, err := product.NewDimensions(
//	    decimal.RequireFromString("2.5"), // kg
//	    decimal.NewFromInt(25),           // length, cm
//	    decimal.NewFromInt(35),           // width, cm
//	    decimal.NewFromInt(20),           // height, cm
//	)
func NewDimensions(weight, length, width, height decimal.Decimal) (Dimensions, error) {
	if err := errors.Join(
		nonNegative("weight", weight),
		nonNegative("length", length),
		nonNegative("width", width),
		nonNegative("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		weight: weight,
		length: length,
		width:  width,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func nonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
	}
	return nil
}

func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsIsNotConstructed)
}

func (d Dimensions) Weight() decimal.Decimal {
	return d.weight
}

func (d Dimensions) Length() decimal.Decimal {
	return d.length
}

func (d Dimensions) Width() decimal.Decimal {
	return d.width
}

func (d Dimensions) Height() decimal.Decimal {
	return d.height
}

// VolumetricWeight is length × width × height / 6000.
func (d Dimensions) VolumetricWeight() decimal.Decimal {
	return d.length.Mul(d.width).Mul(d.height).Div(volumetricDivisor)
}

// BilledWeight is the larger of the actual and the volumetric weight.
func (d Dimensions) BilledWeight() decimal.Decimal {
	return decimal.Max(d.weight, d.VolumetricWeight())
}

// ShippingCost is billedWeight × 2.5 + 10, rounded to cents: the /6000
// volumetric step has no finite decimal expansion, so the cost is fixed at
// the smallest currency unit.
func (d Dimensions) ShippingCost() decimal.Decimal {
	return d.BilledWeight().Mul(ratePerKilogram).Add(shippingBaseFee).Round(2)
}
