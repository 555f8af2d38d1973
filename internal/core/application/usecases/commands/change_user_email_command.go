package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrChangeUserEmailCommandIsNotConstructed = errors.New(
	"ChangeUserEmailCommand must be created via NewChangeUserEmailCommand constructor",
)

type ChangeUserEmailCommand struct {
	userID kernel.ID
	email  kernel.Email

	guard guard.ConstructorGuard
}

func NewChangeUserEmailCommand(userID kernel.ID, email string) (ChangeUserEmailCommand, error) {
	parsed, emailErr := kernel.NewEmail(email)
	if err := errors.Join(userID.Validate(), emailErr); err != nil {
		return ChangeUserEmailCommand{}, err
	}

	return ChangeUserEmailCommand{
		userID: userID,
		email:  parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeUserEmailCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserEmailCommandIsNotConstructed)
}

func (c ChangeUserEmailCommand) UserID() kernel.ID {
	return c.userID
}

func (c ChangeUserEmailCommand) Email() kernel.Email {
	return c.email
}
