package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

type ChangeProductPriceCommand struct {
	productID kernel.ID
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewChangeProductPriceCommand(productID kernel.ID, price decimal.Decimal) (ChangeProductPriceCommand, error) {
	var priceErr error
	if !price.IsPositive() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than zero", price))
	}
	if err := errors.Join(productID.Validate(), priceErr); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return ChangeProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

func (c ChangeProductPriceCommand) ProductID() kernel.ID {
	return c.productID
}

func (c ChangeProductPriceCommand) Price() decimal.Decimal {
	return c.price
}
