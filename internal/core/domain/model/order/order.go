package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const maxDiscountPercentage = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("order must be created via NewOrder or RestoreOrder")

	hundred = decimal.NewFromInt(100)
)

// Order is the aggregate root of a customer purchase.
//
// Order follows these invariants:
//   - customer id and payment method are always set
//   - subtotal, shipping cost and total are derived from items and discount and
//     are recomputed after every mutation
//   - item line numbers are unique and never reused inside the order
//   - a delivered order has a delivery time
type Order struct {
	id            kernel.ID
	customerID    kernel.ID
	paymentMethod string
	items         []Item
	nextLine      int

	subtotal     decimal.Decimal
	shippingCost decimal.Decimal
	discount     decimal.Decimal
	total        decimal.Decimal

	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an empty Pending order without identity.
//
// Example:
//
//	o, err := order.NewOrder(customer.ID(), "CREDIT_CARD", time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerID kernel.ID, paymentMethod string, createdAt time.Time) (*Order, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if err := errors.Join(validateCustomerID(customerID), validatePaymentMethod(paymentMethod)); err != nil {
		return nil, err
	}

	return &Order{
		customerID:    customerID,
		paymentMethod: paymentMethod,
		nextLine:      1,
		subtotal:      decimal.Zero,
		shippingCost:  decimal.Zero,
		discount:      decimal.Zero,
		total:         decimal.Zero,
		status:        Pending,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds a stored order. Totals are recomputed from items and discount.
func RestoreOrder(
	id kernel.ID,
	customerID kernel.ID,
	paymentMethod string,
	status Status,
	items []Item,
	discount decimal.Decimal,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	var discountErr, deliveredErr error
	if discount.IsNegative() {
		discountErr = errs.NewValueIsInvalidErrorWithCause("discount", fmt.Errorf("%s is negative", discount))
	}
	if status == Delivered && deliveredAt == nil {
		deliveredErr = errs.NewValueIsRequiredErrorWithCause("delivered at", errors.New("order is delivered"))
	}

	nextLine := 1
	itemErrs := make([]error, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		if _, dup := seen[item.line]; dup {
			itemErrs = append(itemErrs, errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("%d is duplicated", item.line)))
		}
		seen[item.line] = struct{}{}
		nextLine = max(nextLine, item.line+1)
	}

	if err := errors.Join(
		id.Validate(),
		validateCustomerID(customerID),
		validatePaymentMethod(paymentMethod),
		status.Validate(),
		discountErr,
		deliveredErr,
		errors.Join(itemErrs...),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		paymentMethod: paymentMethod,
		items:         slices.Clone(items),
		nextLine:      nextLine,
		discount:      discount,
		status:        status,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}
	if deliveredAt != nil {
		at := *deliveredAt
		o.deliveredAt = &at
	}
	o.recalculate()

	return o, nil
}

func validateCustomerID(id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("customer id")
	}
	return id.Validate()
}

func validatePaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	return nil
}

// Validate ensures the Order was created through one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// AssignID sets the storage identity. It fails once an identity is set.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return kernel.ErrIDIsAlreadyAssigned
	}
	o.id = id
	return nil
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Items returns a copy of the item lines in insertion order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Item looks up a line by number.
func (o *Order) Item(line int) (Item, bool) {
	idx := slices.IndexFunc(o.items, func(i Item) bool { return i.line == line })
	if idx < 0 {
		return Item{}, false
	}
	return o.items[idx], true
}

func (o *Order) Subtotal() decimal.Decimal {
	return o.subtotal
}

func (o *Order) ShippingCost() decimal.Decimal {
	return o.shippingCost
}

func (o *Order) Discount() decimal.Decimal {
	return o.discount
}

// Total is subtotal + shipping cost - discount. It is not clamped at zero.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery time and whether the order was delivered.
func (o *Order) DeliveredAt() (time.Time, bool) {
	if o.deliveredAt == nil {
		return time.Time{}, false
	}
	return *o.deliveredAt, true
}

// AddItem appends a line and returns it with its line number.
//
// Returns:
//   - the stored item on success
//   - a validation error if the item was not constructed or the order is terminal
func (o *Order) AddItem(item Item) (Item, error) {
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	if err := o.ValidateEditable(); err != nil {
		return Item{}, err
	}

	item.line = o.nextLine
	o.nextLine++
	o.items = append(o.items, item)
	o.recalculate()

	return item, nil
}

// RemoveItem drops a line and returns it so the caller can release its stock.
func (o *Order) RemoveItem(line int) (Item, error) {
	if err := o.ValidateEditable(); err != nil {
		return Item{}, err
	}

	idx := slices.IndexFunc(o.items, func(i Item) bool { return i.line == line })
	if idx < 0 {
		return Item{}, errs.NewObjectNotFoundError("order item", line)
	}

	removed := o.items[idx]
	o.items = slices.Delete(o.items, idx, idx+1)
	o.recalculate()

	return removed, nil
}

// ApplyDiscountAmount replaces the discount with an absolute amount.
func (o *Order) ApplyDiscountAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("discount", fmt.Errorf("%s is negative", amount))
	}
	if err := o.ValidateEditable(); err != nil {
		return err
	}

	o.discount = amount
	o.recalculate()
	return nil
}

// ApplyDiscountPercentage replaces the discount with subtotal × percentage / 100,
// kept exact. Items added later do not change it.
func (o *Order) ApplyDiscountPercentage(percentage int) error {
	if percentage < 0 || percentage > maxDiscountPercentage {
		return errs.NewValueIsOutOfRangeError("percentage", percentage, 0, maxDiscountPercentage)
	}
	if err := o.ValidateEditable(); err != nil {
		return err
	}

	o.discount = o.subtotal.Mul(decimal.NewFromInt(int64(percentage))).Div(hundred)
	o.recalculate()
	return nil
}

// Confirm moves a Pending order to Confirmed and reports whether it did.
func (o *Order) Confirm() bool {
	return o.transition(o.status.Confirm())
}

// Process moves a Confirmed order to Processing and reports whether it did.
func (o *Order) Process() bool {
	return o.transition(o.status.Process())
}

// Ship moves a Processing order to Shipped and reports whether it did.
func (o *Order) Ship() bool {
	return o.transition(o.status.Ship())
}

// Deliver moves a Shipped order to Delivered, records at as the delivery time
// and reports whether it did.
func (o *Order) Deliver(at time.Time) bool {
	if !o.transition(o.status.Deliver()) {
		return false
	}
	o.deliveredAt = &at
	return true
}

// Cancel moves a non-terminal order to Cancelled and reports whether it did.
// A false result means no stock must be released.
func (o *Order) Cancel() bool {
	return o.transition(o.status.Cancel())
}

func (o *Order) transition(next Status, changed bool) bool {
	if changed {
		o.status = next
	}
	return changed
}

// ValidateEditable fails once the order is delivered or cancelled.
func (o *Order) ValidateEditable() error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot be changed", o.status),
		)
	}
	return nil
}

func (o *Order) recalculate() {
	subtotal := decimal.Zero
	shipping := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.TotalPrice())
		shipping = shipping.Add(item.shippingCost)
	}

	o.subtotal = subtotal
	o.shippingCost = shipping
	o.total = subtotal.Add(shipping).Sub(o.discount)
}
