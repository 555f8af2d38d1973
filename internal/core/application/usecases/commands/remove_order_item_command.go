package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

type RemoveOrderItemCommand struct {
	orderID kernel.ID
	line    int

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(orderID kernel.ID, line int) (RemoveOrderItemCommand, error) {
	var lineErr error
	if line <= 0 {
		lineErr = errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("%d must be positive", line))
	}
	if err := errors.Join(orderID.Validate(), lineErr); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return RemoveOrderItemCommand{
		orderID: orderID,
		line:    line,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c RemoveOrderItemCommand) Line() int {
	return c.line
}
