package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand adds units to a physical product.
type RestockProductCommand struct {
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

func NewRestockProductCommand(productID kernel.ID, quantity int) (RestockProductCommand, error) {
	var qtyErr error
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than zero", quantity))
	}
	if err := errors.Join(productID.Validate(), qtyErr); err != nil {
		return RestockProductCommand{}, err
	}

	return RestockProductCommand{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

func (c RestockProductCommand) ProductID() kernel.ID {
	return c.productID
}

func (c RestockProductCommand) Quantity() int {
	return c.quantity
}
