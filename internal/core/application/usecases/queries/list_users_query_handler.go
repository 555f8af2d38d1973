package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/user"

	"github.com/samber/lo"
)

type ListUsersQueryHandler struct {
	uowFactory UserReadUoWFactory
}

func NewListUsersQueryHandler(uowFactory UserReadUoWFactory) ListUsersQueryHandler {
	return ListUsersQueryHandler{uowFactory: uowFactory}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if role, ok := query.Role(); ok {
		users = lo.Filter(users, func(u user.User, _ int) bool {
			return u.Role() == role
		})
	}

	return lo.Map(users, func(u user.User, _ int) UserResponse {
		return newUserResponse(u)
	}), nil
}
