package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("product must be created via NewPhysical, NewDigital or their Restore counterparts")

// Product is the capability shared by every catalog variant.
type Product interface {
	ID() kernel.ID
	Kind() Kind
	Name() string
	Description() string
	Price() decimal.Decimal
	Category() string
	CreatedAt() time.Time
	IsAvailable() bool

	// ShippingCost is the per-item shipping charge of this product.
	ShippingCost() decimal.Decimal

	// AssignID sets the storage identity. It fails once an identity is set.
	AssignID(id kernel.ID) error

	// Update replaces name, description, price and category after validating all of them.
	Update(info Info) error
	ChangePrice(price decimal.Decimal) error
	SetAvailability(available bool)

	Validate() error

	sealed()
}

// Info holds the fields common to every catalog variant.
type Info struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
}

func (i Info) normalize() Info {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)
	return i
}

func (i Info) validate() error {
	var nameErr, categoryErr error
	if i.Name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if i.Category == "" {
		categoryErr = errs.NewValueIsRequiredError("category")
	}
	return errors.Join(nameErr, categoryErr, validatePrice(i.Price))
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than zero", price))
	}
	return nil
}

// entry carries the common state and behaviour embedded by each variant.
type entry struct {
	id        kernel.ID
	info      Info
	createdAt time.Time
	available bool

	guard guard.ConstructorGuard
}

func newEntry(info Info, createdAt time.Time) (entry, error) {
	info = info.normalize()
	if err := info.validate(); err != nil {
		return entry{}, err
	}

	return entry{
		info:      info,
		createdAt: createdAt,
		available: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func restoreEntry(id kernel.ID, info Info, createdAt time.Time, available bool) (entry, error) {
	e, err := newEntry(info, createdAt)
	if err != nil {
		return entry{}, err
	}
	if err = id.Validate(); err != nil {
		return entry{}, err
	}

	e.id = id
	e.available = available
	return e, nil
}

func (e *entry) ID() kernel.ID {
	return e.id
}

func (e *entry) Name() string {
	return e.info.Name
}

func (e *entry) Description() string {
	return e.info.Description
}

func (e *entry) Price() decimal.Decimal {
	return e.info.Price
}

func (e *entry) Category() string {
	return e.info.Category
}

func (e *entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *entry) IsAvailable() bool {
	return e.available
}

func (e *entry) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !e.id.IsZero() {
		return kernel.ErrIDIsAlreadyAssigned
	}

	e.id = id
	return nil
}

func (e *entry) Update(info Info) error {
	info = info.normalize()
	if err := info.validate(); err != nil {
		return err
	}

	e.info = info
	return nil
}

func (e *entry) ChangePrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	e.info.Price = price
	return nil
}

func (e *entry) SetAvailability(available bool) {
	e.available = available
}

func (e *entry) Validate() error {
	return e.guard.Validate(ErrProductIsNotConstructed)
}

func (e *entry) sealed() {}
