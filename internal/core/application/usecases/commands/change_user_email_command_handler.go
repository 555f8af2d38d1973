package commands

import (
	"context"
)

// ChangeUserEmailCommandHandler moves an account to a new address. It fails
// with a ConflictError when another account already uses it. Setting the
// current address again, in any case, succeeds.
type ChangeUserEmailCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeUserEmailCommandHandler(uowFactory UserUoWFactory) ChangeUserEmailCommandHandler {
	return ChangeUserEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeUserEmailCommandHandler) Handle(ctx context.Context, cmd ChangeUserEmailCommand) error {
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

	if err = ensureEmailIsFree(ctx, userRepo, cmd.Email(), u.ID()); err != nil {
		return err
	}

	if err = u.ChangeEmail(cmd.Email()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
