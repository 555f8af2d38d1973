package commands

import (
	"context"
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"
)

type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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

	if err = applyUserChanges(u, cmd); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyUserChanges(u user.User, cmd UpdateUserCommand) error {
	var nameErr error
	if name, ok := cmd.Name(); ok {
		nameErr = u.Rename(name)
	}

	var profileErr error
	switch v := u.(type) {
	case *user.Customer:
		if cmd.hasStaffChanges() {
			profileErr = notApplicable("staff fields", v.Role())
			break
		}
		if cmd.hasCustomerChanges() {
			profile := v.Profile()
			if fiscalID, ok := cmd.FiscalID(); ok {
				profile.FiscalID = fiscalID
			}
			if address, ok := cmd.Address(); ok {
				profile.Address = address
			}
			if phone, ok := cmd.Phone(); ok {
				profile.Phone = phone
			}
			profileErr = v.UpdateProfile(profile)
		}

	case *user.Admin:
		if cmd.hasCustomerChanges() {
			profileErr = notApplicable("customer fields", v.Role())
			break
		}
		if cmd.hasStaffChanges() {
			staff := v.Staff()
			if department, ok := cmd.Department(); ok {
				staff.Department = department
			}
			if code, ok := cmd.EmployeeCode(); ok {
				staff.EmployeeCode = code
			}
			v.UpdateStaff(staff)
		}
	}

	return errors.Join(nameErr, profileErr)
}

func notApplicable(fields string, role user.Role) error {
	return errs.NewValueIsInvalidErrorWithCause(fields, fmt.Errorf("not applicable to %s", role))
}
