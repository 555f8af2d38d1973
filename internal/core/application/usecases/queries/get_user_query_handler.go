package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/user"
)

type GetUserQueryHandler struct {
	uowFactory UserReadUoWFactory
}

func NewGetUserQueryHandler(uowFactory UserReadUoWFactory) GetUserQueryHandler {
	return GetUserQueryHandler{uowFactory: uowFactory}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UserResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		u   user.User
		err error
	)
	if email, ok := query.Email(); ok {
		u, err = uow.UserRepository().FindByEmail(ctx, email)
	} else {
		u, err = uow.UserRepository().Get(ctx, query.UserID())
	}
	if err != nil {
		return UserResponse{}, err
	}

	return newUserResponse(u), nil
}
