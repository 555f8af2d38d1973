package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand changes the profile fields of an account. Fields left
// unset keep their value. Customer fields cannot be set on an admin and staff
// fields cannot be set on a customer.
//
// Example:
//
//	cmd, err := NewUpdateUserCommand(id,
//	    WithUserName("João P. Silva"),
//	    WithAddress("Rua B, 10"),
//	)
type UpdateUserCommand struct {
	userID kernel.ID

	name         *string
	fiscalID     *string
	address      *string
	phone        *string
	department   *string
	employeeCode *string

	guard guard.ConstructorGuard
}

type UpdateUserOption func(*UpdateUserCommand)

func WithUserName(name string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.name = &name }
}

func WithFiscalID(fiscalID string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.fiscalID = &fiscalID }
}

func WithAddress(address string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.address = &address }
}

func WithPhone(phone string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.phone = &phone }
}

func WithDepartment(department string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.department = &department }
}

func WithEmployeeCode(code string) UpdateUserOption {
	return func(c *UpdateUserCommand) { c.employeeCode = &code }
}

func NewUpdateUserCommand(userID kernel.ID, opts ...UpdateUserOption) (UpdateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}

	cmd := UpdateUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(&cmd)
	}

	if !cmd.hasChanges() {
		return UpdateUserCommand{}, errs.NewValueIsRequiredError("at least one field")
	}

	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) UserID() kernel.ID {
	return c.userID
}

// Name returns the new name and whether it was set.
func (c UpdateUserCommand) Name() (string, bool) {
	return deref(c.name)
}

func (c UpdateUserCommand) FiscalID() (string, bool) {
	return deref(c.fiscalID)
}

func (c UpdateUserCommand) Address() (string, bool) {
	return deref(c.address)
}

func (c UpdateUserCommand) Phone() (string, bool) {
	return deref(c.phone)
}

func (c UpdateUserCommand) Department() (string, bool) {
	return deref(c.department)
}

func (c UpdateUserCommand) EmployeeCode() (string, bool) {
	return deref(c.employeeCode)
}

func (c UpdateUserCommand) hasChanges() bool {
	return c.name != nil || c.hasCustomerChanges() || c.hasStaffChanges()
}

func (c UpdateUserCommand) hasCustomerChanges() bool {
	return c.fiscalID != nil || c.address != nil || c.phone != nil
}

func (c UpdateUserCommand) hasStaffChanges() bool {
	return c.department != nil || c.employeeCode != nil
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
