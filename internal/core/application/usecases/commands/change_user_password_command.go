package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrChangeUserPasswordCommandIsNotConstructed = errors.New(
		"ChangeUserPasswordCommand must be created via NewChangeUserPasswordCommand constructor",
	)
	ErrCurrentPasswordMismatch = errs.NewValueIsInvalidErrorWithCause(
		"current password", errors.New("does not match"),
	)
)

// ChangeUserPasswordCommand replaces a password after checking the current one.
type ChangeUserPasswordCommand struct {
	userID   kernel.ID
	current  string
	password string

	guard guard.ConstructorGuard
}

func NewChangeUserPasswordCommand(userID kernel.ID, current, password string) (ChangeUserPasswordCommand, error) {
	var currentErr, passwordErr error
	if current == "" {
		currentErr = errs.NewValueIsRequiredError("current password")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(userID.Validate(), currentErr, passwordErr); err != nil {
		return ChangeUserPasswordCommand{}, err
	}

	return ChangeUserPasswordCommand{
		userID:   userID,
		current:  current,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserPasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserPasswordCommandIsNotConstructed)
}

func (c ChangeUserPasswordCommand) UserID() kernel.ID {
	return c.userID
}

func (c ChangeUserPasswordCommand) Current() string {
	return c.current
}

func (c ChangeUserPasswordCommand) Password() string {
	return c.password
}
