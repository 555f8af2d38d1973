package commands

import (
	"context"

	"github.com/shopspring/decimal"
)

type ApplyDiscountCommandHandler struct {
	uowFactory UoWFactory
}

func NewApplyDiscountCommandHandler(uowFactory UoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order total after the discount.
func (h ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return decimal.Zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return decimal.Zero, err
	}

	if percentage, ok := cmd.Percentage(); ok {
		err = o.ApplyDiscountPercentage(percentage)
	} else {
		err = o.ApplyDiscountAmount(cmd.Amount())
	}
	if err != nil {
		return decimal.Zero, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return decimal.Zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return decimal.Zero, err
	}

	return o.Total(), nil
}
