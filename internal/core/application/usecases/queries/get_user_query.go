package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery or NewGetUserByEmailQuery constructor",
	)
)

// GetUserQuery looks an account up either by id or by email.
type GetUserQuery struct {
	userID kernel.ID
	email  kernel.Email
	byMail bool

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.ID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetUserByEmailQuery matches the address case-insensitively.
func NewGetUserByEmailQuery(email string) (GetUserQuery, error) {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		email:  parsed,
		byMail: true,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}

// Email returns the address and whether the lookup is by email.
func (q GetUserQuery) Email() (kernel.Email, bool) {
	return q.email, q.byMail
}
