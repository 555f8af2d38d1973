package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrSetUserActiveCommandIsNotConstructed = errors.New(
	"SetUserActiveCommand must be created via NewSetUserActiveCommand constructor",
)

// SetUserActiveCommand activates or deactivates an account. Inactive accounts
// cannot authenticate.
type SetUserActiveCommand struct {
	userID kernel.ID
	active bool

	guard guard.ConstructorGuard
}

func NewSetUserActiveCommand(userID kernel.ID, active bool) (SetUserActiveCommand, error) {
	if err := userID.Validate(); err != nil {
		return SetUserActiveCommand{}, err
	}

	return SetUserActiveCommand{
		userID: userID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetUserActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetUserActiveCommandIsNotConstructed)
}

func (c SetUserActiveCommand) UserID() kernel.ID {
	return c.userID
}

func (c SetUserActiveCommand) Active() bool {
	return c.active
}
