package order

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │             │             │
//	   └────────────┴─────────────┴─────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal. A transition requested from a status
// it does not start at leaves the status untouched and reports false.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of a freshly created order.
	Pending

	Confirmed

	Processing

	Shipped

	// Delivered is terminal. The order records its delivery time.
	Delivered

	// Cancelled is terminal. Stock of physical items has been released.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled}
}

// ParseStatus accepts a status name in any case, e.g. "shipped".
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

// Validate checks that s is one of the defined statuses, Unknown excluded.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
//
// Example:
//
//	fmt.Println(order.Status()) // Output: "SHIPPED"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm moves Pending to Confirmed.
func (s Status) Confirm() (Status, bool) {
	return s.advance(Pending, Confirmed)
}

// Process moves Confirmed to Processing.
func (s Status) Process() (Status, bool) {
	return s.advance(Confirmed, Processing)
}

// Ship moves Processing to Shipped.
func (s Status) Ship() (Status, bool) {
	return s.advance(Processing, Shipped)
}

// Deliver moves Shipped to Delivered.
func (s Status) Deliver() (Status, bool) {
	return s.advance(Shipped, Delivered)
}

// Cancel moves any non-terminal status to Cancelled.
//
// Returns:
//   - (Cancelled, true) from Pending, Confirmed, Processing or Shipped
//   - (s, false) otherwise, including an order that is already cancelled
func (s Status) Cancel() (Status, bool) {
	if s.Validate() != nil || s.IsTerminal() {
		return s, false
	}
	return Cancelled, true
}

func (s Status) advance(from, to Status) (Status, bool) {
	if s != from {
		return s, false
	}
	return to, true
}
