package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrCreatePhysicalProductCommandIsNotConstructed = errors.New(
	"CreatePhysicalProductCommand must be created via NewCreatePhysicalProductCommand constructor",
)

// CreatePhysicalProductCommand registers a shippable product with its initial stock.
//
// Example:
//
//	dims, _ := product.NewDimensions(weight, length, width, height)
//	cmd, err := NewCreatePhysicalProductCommand(product.Info{
//	    Name:     "Notebook Dell",
//	    Category: "Electronics",
//	    Price:    decimal.NewFromInt(3500),
//	}, dims, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreatePhysicalProductCommand struct {
	info       product.Info
	dimensions product.Dimensions
	stock      int

	guard guard.ConstructorGuard
}

// NewCreatePhysicalProductCommand checks dimensions and stock. Info is checked
// by the product constructor so all field errors are reported together.
func NewCreatePhysicalProductCommand(info product.Info, dimensions product.Dimensions, stock int) (CreatePhysicalProductCommand, error) {
	var stockErr error
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	if err := errors.Join(dimensions.Validate(), stockErr); err != nil {
		return CreatePhysicalProductCommand{}, err
	}

	return CreatePhysicalProductCommand{
		info:       info,
		dimensions: dimensions,
		stock:      stock,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePhysicalProductCommand) Validate() error {
	return c.guard.Validate(ErrCreatePhysicalProductCommandIsNotConstructed)
}

func (c CreatePhysicalProductCommand) Info() product.Info {
	return c.info
}

func (c CreatePhysicalProductCommand) Dimensions() product.Dimensions {
	return c.dimensions
}

func (c CreatePhysicalProductCommand) Stock() int {
	return c.stock
}
