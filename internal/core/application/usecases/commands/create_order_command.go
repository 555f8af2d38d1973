package commands

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemRequest asks for quantity units of a product.
type ItemRequest struct {
	ProductID kernel.ID
	Quantity  int
}

func (r ItemRequest) validate() error {
	var quantityErr error
	if r.Quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d must be positive", r.Quantity))
	}
	return errors.Join(r.ProductID.Validate(), quantityErr)
}

type CreateOrderCommand struct {
	customerID    kernel.ID
	paymentMethod string
	items         []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order header and every requested item.
// Items are optional.
func NewCreateOrderCommand(customerID kernel.ID, paymentMethod string, items ...ItemRequest) (CreateOrderCommand, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)

	var paymentErr error
	if paymentMethod == "" {
		paymentErr = errs.NewValueIsRequiredError("payment method")
	}

	itemErrs := make([]error, 0, len(items))
	for i, item := range items {
		if err := item.validate(); err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("item %d: %w", i+1, err))
		}
	}

	if err := errors.Join(customerID.Validate(), paymentErr, errors.Join(itemErrs...)); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		customerID:    customerID,
		paymentMethod: paymentMethod,
		items:         append([]ItemRequest(nil), items...),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c CreateOrderCommand) Items() []ItemRequest {
	return append([]ItemRequest(nil), c.items...)
}
