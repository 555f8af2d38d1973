package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/user"
)

type ChangeUserPasswordCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeUserPasswordCommandHandler(uowFactory UserUoWFactory) ChangeUserPasswordCommandHandler {
	return ChangeUserPasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ErrCurrentPasswordMismatch when the current password is wrong.
func (h ChangeUserPasswordCommandHandler) Handle(ctx context.Context, cmd ChangeUserPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	password, err := user.NewPassword(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if !u.Password().Matches(cmd.Current()) {
		return ErrCurrentPasswordMismatch
	}

	if err = u.ChangePassword(password); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
