package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

type ListOrdersQuery struct {
	customerID kernel.ID
	status     order.Status

	guard guard.ConstructorGuard
}

type ListOrdersOption func(*ListOrdersQuery)

// ForCustomer keeps the orders placed by one customer.
func ForCustomer(customerID kernel.ID) ListOrdersOption {
	return func(q *ListOrdersQuery) { q.customerID = customerID }
}

func WithStatus(status order.Status) ListOrdersOption {
	return func(q *ListOrdersQuery) { q.status = status }
}

func NewListOrdersQuery(opts ...ListOrdersOption) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	for _, opt := range opts {
		opt(&q)
	}

	var customerErr, statusErr error
	if q.customerID != 0 {
		customerErr = q.customerID.Validate()
	}
	if q.status != order.Unknown {
		statusErr = q.status.Validate()
	}
	if err := errors.Join(customerErr, statusErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) CustomerID() (kernel.ID, bool) {
	return q.customerID, !q.customerID.IsZero()
}

func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}
