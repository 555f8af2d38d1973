package commands

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"
)

// RegisterCustomerCommandHandler creates customer accounts with unique emails.
type RegisterCustomerCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory UserUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates every field first, then returns a ConflictError if the
// email is taken.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	password, err := user.NewPassword(cmd.Password())
	if err != nil {
		return 0, err
	}

	customer, err := user.NewCustomer(cmd.Name(), cmd.Email(), password, cmd.Profile())
	if err != nil {
		return 0, err
	}

	return register(ctx, h.uowFactory, customer)
}

// RegisterAdminCommandHandler creates admin accounts with unique emails.
type RegisterAdminCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterAdminCommandHandler(uowFactory UserUoWFactory) RegisterAdminCommandHandler {
	return RegisterAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterAdminCommandHandler) Handle(ctx context.Context, cmd RegisterAdminCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	password, err := user.NewPassword(cmd.Password())
	if err != nil {
		return 0, err
	}

	admin, err := user.NewAdmin(cmd.Name(), cmd.Email(), password, cmd.Staff())
	if err != nil {
		return 0, err
	}

	return register(ctx, h.uowFactory, admin)
}

func register(ctx context.Context, uowFactory UserUoWFactory, u user.User) (kernel.ID, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	if err := ensureEmailIsFree(ctx, userRepo, u.Email(), 0); err != nil {
		return 0, err
	}

	if err := userRepo.Add(ctx, u); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return u.ID(), nil
}

// ensureEmailIsFree fails with a ConflictError when email belongs to a user other than owner.
func ensureEmailIsFree(ctx context.Context, userRepo ports.UserRepository, email kernel.Email, owner kernel.ID) error {
	existing, err := userRepo.FindByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID() == owner {
		return nil
	}
	return errs.NewConflictError("email", email)
}
