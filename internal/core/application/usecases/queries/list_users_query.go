package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

type ListUsersQuery struct {
	role user.Role

	guard guard.ConstructorGuard
}

// NewListUsersQuery lists every account. Pass a role name to keep only that
// role; an empty name means no filter.
func NewListUsersQuery(role string) (ListUsersQuery, error) {
	q := ListUsersQuery{guard: guard.NewConstructorGuard()}
	if role == "" {
		return q, nil
	}

	parsed, err := user.ParseRole(role)
	if err != nil {
		return ListUsersQuery{}, err
	}
	q.role = parsed
	return q, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

// Role returns the filter and whether it is set.
func (q ListUsersQuery) Role() (user.Role, bool) {
	return q.role, q.role != user.RoleUnknown
}
