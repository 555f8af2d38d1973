package kernel

import (
	"errors"
	"regexp"
	"strings"

	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Email is a validated email address. The address is kept as entered for
// display, and compared case-insensitively.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

// NewEmail trims the raw address and validates it.
//
// Example:
//
//	email, err := kernel.NewEmail(" Joao@Email.com ")
//	// email.String() == "Joao@Email.com", email.Key() == "joao@email.com"
func NewEmail(raw string) (Email, error) {
	address := strings.TrimSpace(raw)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(address) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", errors.New(address+" is not a valid address"))
	}

	return Email{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// MustNewEmail is NewEmail for literals known to be valid. It panics otherwise.
func MustNewEmail(raw string) Email {
	email, err := NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return email
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.address
}

// Key is the normalized form used for uniqueness checks and lookups.
func (e Email) Key() string {
	return strings.ToLower(e.address)
}

// Equals compares two addresses ignoring case.
func (e Email) Equals(other Email) bool {
	return e.Key() == other.Key()
}
