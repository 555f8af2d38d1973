package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/guard"
)

var ErrCreateDigitalProductCommandIsNotConstructed = errors.New(
	"CreateDigitalProductCommand must be created via NewCreateDigitalProductCommand constructor",
)

// CreateDigitalProductCommand registers a downloadable product.
type CreateDigitalProductCommand struct {
	info  product.Info
	asset product.Asset

	guard guard.ConstructorGuard
}

// NewCreateDigitalProductCommand never fails on its own. Info and asset are
// checked by the product constructor.
func NewCreateDigitalProductCommand(info product.Info, asset product.Asset) CreateDigitalProductCommand {
	return CreateDigitalProductCommand{
		info:  info,
		asset: asset,
		guard: guard.NewConstructorGuard(),
	}
}

func (c CreateDigitalProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateDigitalProductCommandIsNotConstructed)
}

func (c CreateDigitalProductCommand) Info() product.Info {
	return c.info
}

func (c CreateDigitalProductCommand) Asset() product.Asset {
	return c.asset
}
