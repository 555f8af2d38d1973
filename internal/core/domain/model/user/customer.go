package user

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
)

const (
	fiscalIDDigits = 11
	minPhoneDigits = 10
	maxPhoneDigits = 11
)

var ErrCustomerIsNotConstructed = errors.New("customer must be created via NewCustomer or RestoreCustomer")

// CustomerProfile holds the optional contact data of a customer.
// FiscalID and Phone are stored as digits only.
type CustomerProfile struct {
	FiscalID string
	Address  string
	Phone    string
}

func (p CustomerProfile) normalize() (CustomerProfile, error) {
	fiscalID := digitsOnly(p.FiscalID)
	phone := digitsOnly(p.Phone)

	var fiscalErr, phoneErr error
	switch {
	case fiscalID == "":
	case !isDigits(fiscalID) || len(fiscalID) != fiscalIDDigits:
		fiscalErr = errs.NewValueIsInvalidErrorWithCause(
			"fiscal id",
			fmt.Errorf("must have %d digits, got %q", fiscalIDDigits, fiscalID),
		)
	}
	switch {
	case phone == "":
	case !isDigits(phone):
		phoneErr = errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not numeric", phone))
	case len(phone) < minPhoneDigits || len(phone) > maxPhoneDigits:
		phoneErr = errs.NewValueIsOutOfRangeError("phone digits", len(phone), minPhoneDigits, maxPhoneDigits)
	}
	if err := errors.Join(fiscalErr, phoneErr); err != nil {
		return CustomerProfile{}, err
	}

	return CustomerProfile{
		FiscalID: fiscalID,
		Address:  strings.TrimSpace(p.Address),
		Phone:    phone,
	}, nil
}

// digitsOnly drops the punctuation of formatted input such as "123.456.789-01"
// or "(11) 98765-4321". Any other non-digit is kept so that validation rejects it.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case strings.ContainsRune(" .-()+/", r):
			return -1
		default:
			return r
		}
	}, strings.TrimSpace(s))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Customer is an account that places orders.
type Customer struct {
	account

	profile CustomerProfile
}

// NewCustomer creates an active customer without identity.
//
// Example:
//
//	password, err := user.NewPassword("senha123")
//	...
//	customer, err := user.NewCustomer("João Silva", kernel.MustNewEmail("joao@email.com"), password,
//	    user.CustomerProfile{FiscalID: "123.456.789-01", Address: "Rua A, 123", Phone: "(11) 98765-4321"})
func NewCustomer(name string, email kernel.Email, password Password, profile CustomerProfile) (*Customer, error) {
	a, accountErr := newAccount(name, email, password)
	normalized, profileErr := profile.normalize()
	if err := errors.Join(accountErr, profileErr); err != nil {
		return nil, err
	}

	return &Customer{account: a, profile: normalized}, nil
}

// RestoreCustomer rebuilds a stored customer.
func RestoreCustomer(
	id kernel.ID,
	name string,
	email kernel.Email,
	password Password,
	active bool,
	profile CustomerProfile,
) (*Customer, error) {
	a, accountErr := restoreAccount(id, name, email, password, active)
	normalized, profileErr := profile.normalize()
	if err := errors.Join(accountErr, profileErr); err != nil {
		return nil, err
	}

	return &Customer{account: a, profile: normalized}, nil
}

func (c *Customer) Role() Role {
	return RoleCustomer
}

func (c *Customer) Profile() CustomerProfile {
	return c.profile
}

// UpdateProfile replaces the contact data after validating it.
func (c *Customer) UpdateProfile(profile CustomerProfile) error {
	normalized, err := profile.normalize()
	if err != nil {
		return err
	}

	c.profile = normalized
	return nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.account.Validate()
}
