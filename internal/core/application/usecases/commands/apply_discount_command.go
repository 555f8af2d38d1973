package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyAmountDiscountCommand or NewApplyPercentageDiscountCommand",
)

// ApplyDiscountCommand replaces the discount of an order with either an
// absolute amount or a percentage of its subtotal.
type ApplyDiscountCommand struct {
	orderID    kernel.ID
	amount     decimal.Decimal
	percentage int
	byPercent  bool

	guard guard.ConstructorGuard
}

func NewApplyAmountDiscountCommand(orderID kernel.ID, amount decimal.Decimal) (ApplyDiscountCommand, error) {
	var amountErr error
	if amount.IsNegative() {
		amountErr = errs.NewValueIsInvalidErrorWithCause("discount", fmt.Errorf("%s is negative", amount))
	}
	if err := errors.Join(orderID.Validate(), amountErr); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return ApplyDiscountCommand{
		orderID: orderID,
		amount:  amount,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func NewApplyPercentageDiscountCommand(orderID kernel.ID, percentage int) (ApplyDiscountCommand, error) {
	var percentageErr error
	if percentage < 0 || percentage > 100 {
		percentageErr = errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	if err := errors.Join(orderID.Validate(), percentageErr); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return ApplyDiscountCommand{
		orderID:    orderID,
		percentage: percentage,
		byPercent:  true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

func (c ApplyDiscountCommand) OrderID() kernel.ID {
	return c.orderID
}

// Percentage returns the percentage and whether the discount is relative.
func (c ApplyDiscountCommand) Percentage() (int, bool) {
	return c.percentage, c.byPercent
}

func (c ApplyDiscountCommand) Amount() decimal.Decimal {
	return c.amount
}
