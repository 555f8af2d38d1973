package commands

import (
	"errors"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// Action is a forward step of the fulfillment lifecycle.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionProcess Action = "process"
	ActionShip    Action = "ship"
	ActionDeliver Action = "deliver"
)

// ParseAction accepts an action name in any case.
func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(s)))
	if err := action.Validate(); err != nil {
		return "", err
	}
	return action, nil
}

func (a Action) Validate() error {
	switch a {
	case ActionConfirm, ActionProcess, ActionShip, ActionDeliver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", errors.New(string(a)+" is not one of confirm, process, ship, deliver"))
	}
}

type AdvanceOrderCommand struct {
	orderID kernel.ID
	action  Action

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID kernel.ID, action Action) (AdvanceOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), action.Validate()); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AdvanceOrderCommand) Action() Action {
	return c.action
}
