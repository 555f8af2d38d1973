package commands

import (
	"context"
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// DeleteUserCommandHandler removes an account. A customer that placed orders
// cannot be removed and gets a ConflictError.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	orders, err := uow.OrderRepository().FindByCustomer(ctx, u.ID())
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return errs.NewConflictErrorWithCause("user", u.ID(), fmt.Errorf("customer has %d orders", len(orders)))
	}

	if err = userRepo.Delete(ctx, u.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
