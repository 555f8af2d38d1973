package user

import (
	"errors"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("user must be created via NewCustomer, NewAdmin or their Restore counterparts")

// User is the capability shared by every account variant.
type User interface {
	ID() kernel.ID
	Role() Role
	Name() string
	Email() kernel.Email
	Password() Password
	IsActive() bool

	// Authenticate reports whether the account is active and plain matches its password.
	Authenticate(plain string) bool

	Rename(name string) error
	ChangeEmail(email kernel.Email) error
	ChangePassword(password Password) error
	Activate()
	Deactivate()

	// AssignID sets the storage identity. It fails once an identity is set.
	AssignID(id kernel.ID) error

	Validate() error

	sealed()
}

// account carries the state and behaviour embedded by each variant.
type account struct {
	id       kernel.ID
	name     string
	email    kernel.Email
	password Password
	active   bool

	guard guard.ConstructorGuard
}

func newAccount(name string, email kernel.Email, password Password) (account, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(validateName(name), email.Validate(), password.Validate()); err != nil {
		return account{}, err
	}

	return account{
		name:     name,
		email:    email,
		password: password,
		active:   true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func restoreAccount(id kernel.ID, name string, email kernel.Email, password Password, active bool) (account, error) {
	a, err := newAccount(name, email, password)
	if err = errors.Join(err, id.Validate()); err != nil {
		return account{}, err
	}

	a.id = id
	a.active = active
	return a, nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func (a *account) ID() kernel.ID {
	return a.id
}

func (a *account) Name() string {
	return a.name
}

func (a *account) Email() kernel.Email {
	return a.email
}

func (a *account) Password() Password {
	return a.password
}

func (a *account) IsActive() bool {
	return a.active
}

func (a *account) Authenticate(plain string) bool {
	return a.active && a.password.Matches(plain)
}

func (a *account) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	a.name = name
	return nil
}

// ChangeEmail replaces the address. Uniqueness across accounts is checked by the caller.
func (a *account) ChangeEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	a.email = email
	return nil
}

func (a *account) ChangePassword(password Password) error {
	if err := password.Validate(); err != nil {
		return err
	}

	a.password = password
	return nil
}

func (a *account) Activate() {
	a.active = true
}

func (a *account) Deactivate() {
	a.active = false
}

func (a *account) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !a.id.IsZero() {
		return kernel.ErrIDIsAlreadyAssigned
	}

	a.id = id
	return nil
}

func (a *account) Validate() error {
	return a.guard.Validate(ErrUserIsNotConstructed)
}

func (a *account) sealed() {}
