package commands

import (
	"context"
)

// SetUserActiveCommandHandler toggles the active flag. Asking for the current
// state changes nothing.
type SetUserActiveCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSetUserActiveCommandHandler(uowFactory UserUoWFactory) SetUserActiveCommandHandler {
	return SetUserActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetUserActiveCommandHandler) Handle(ctx context.Context, cmd SetUserActiveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if u.IsActive() == cmd.Active() {
		return nil
	}

	if cmd.Active() {
		u.Activate()
	} else {
		u.Deactivate()
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
