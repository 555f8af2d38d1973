package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
)

// UserRepository defines the storage contract for customers and admins.
type UserRepository interface {
	// Add stores a new user and assigns its identity through AssignID.
	// Email uniqueness is checked by the caller with FindByEmail.
	Add(ctx context.Context, u user.User) error

	Update(ctx context.Context, u user.User) error

	Delete(ctx context.Context, id kernel.ID) error

	// Get returns the user with the given id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (user.User, error)

	// FindByEmail matches the address case-insensitively.
	// Returns an ObjectNotFoundError when no user has it.
	FindByEmail(ctx context.Context, email kernel.Email) (user.User, error)

	GetAll(ctx context.Context) ([]user.User, error)

	Count(ctx context.Context) (int, error)
}
