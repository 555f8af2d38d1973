package queries

import (
	"context"
	"errors"

	"ecommerce/internal/pkg/errs"
)

// AuthenticateUserQueryHandler reports whether the credentials belong to an
// active account. An unknown email is a failed login, not an error.
type AuthenticateUserQueryHandler struct {
	uowFactory UserReadUoWFactory
}

func NewAuthenticateUserQueryHandler(uowFactory UserReadUoWFactory) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{uowFactory: uowFactory}
}

// Handle returns the account on success so callers can greet the user.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (UserResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UserResponse{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().FindByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UserResponse{}, false, nil
	}
	if err != nil {
		return UserResponse{}, false, err
	}

	if !u.Authenticate(query.Password()) {
		return UserResponse{}, false, nil
	}

	return newUserResponse(u), true, nil
}
