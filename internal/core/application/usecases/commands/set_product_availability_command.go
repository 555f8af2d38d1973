package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
	"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
)

// SetProductAvailabilityCommand takes a product off sale or puts it back.
type SetProductAvailabilityCommand struct {
	productID kernel.ID
	available bool

	guard guard.ConstructorGuard
}

func NewSetProductAvailabilityCommand(productID kernel.ID, available bool) (SetProductAvailabilityCommand, error) {
	if err := productID.Validate(); err != nil {
		return SetProductAvailabilityCommand{}, err
	}

	return SetProductAvailabilityCommand{
		productID: productID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

func (c SetProductAvailabilityCommand) ProductID() kernel.ID {
	return c.productID
}

func (c SetProductAvailabilityCommand) Available() bool {
	return c.available
}
