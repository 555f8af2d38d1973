package commands

import (
	"errors"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrRegisterAdminCommandIsNotConstructed = errors.New(
		"RegisterAdminCommand must be created via NewRegisterAdminCommand constructor",
	)
)

// credentials are the fields shared by every account registration.
type credentials struct {
	name     string
	email    kernel.Email
	password string
}

func newCredentials(name, email, password string) (credentials, error) {
	name = strings.TrimSpace(name)

	var nameErr, passwordErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	parsed, emailErr := kernel.NewEmail(email)

	if err := errors.Join(nameErr, emailErr, passwordErr); err != nil {
		return credentials{}, err
	}

	return credentials{name: name, email: parsed, password: password}, nil
}

// RegisterCustomerCommand opens a customer account.
//
// Example:
//
//	cmd, err := NewRegisterCustomerCommand("João Silva", "joao@email.com", "senha123",
//	    user.CustomerProfile{FiscalID: "12345678901", Address: "Rua A, 123", Phone: "11987654321"})
//	if err != nil {
//	    return err
//	}
//
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // Email already registered
//	}
type RegisterCustomerCommand struct {
	credentials

	profile user.CustomerProfile

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(name, email, password string, profile user.CustomerProfile) (RegisterCustomerCommand, error) {
	creds, err := newCredentials(name, email, password)
	if err != nil {
		return RegisterCustomerCommand{}, err
	}

	return RegisterCustomerCommand{
		credentials: creds,
		profile:     profile,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c RegisterCustomerCommand) Password() string {
	return c.password
}

func (c RegisterCustomerCommand) Profile() user.CustomerProfile {
	return c.profile
}

// RegisterAdminCommand opens a back-office account.
type RegisterAdminCommand struct {
	credentials

	staff user.StaffProfile

	guard guard.ConstructorGuard
}

func NewRegisterAdminCommand(name, email, password string, staff user.StaffProfile) (RegisterAdminCommand, error) {
	creds, err := newCredentials(name, email, password)
	if err != nil {
		return RegisterAdminCommand{}, err
	}

	return RegisterAdminCommand{
		credentials: creds,
		staff:       staff,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterAdminCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAdminCommandIsNotConstructed)
}

func (c RegisterAdminCommand) Name() string {
	return c.name
}

func (c RegisterAdminCommand) Email() kernel.Email {
	return c.email
}

func (c RegisterAdminCommand) Password() string {
	return c.password
}

func (c RegisterAdminCommand) Staff() user.StaffProfile {
	return c.staff
}
