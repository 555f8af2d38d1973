package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

type AddOrderItemCommand struct {
	orderID kernel.ID
	item    ItemRequest

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID, productID kernel.ID, quantity int) (AddOrderItemCommand, error) {
	item := ItemRequest{ProductID: productID, Quantity: quantity}
	if err := errors.Join(orderID.Validate(), item.validate()); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID: orderID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AddOrderItemCommand) ProductID() kernel.ID {
	return c.item.ProductID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.item.Quantity
}
