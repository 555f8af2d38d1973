package userrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"
)

// MemoryUserRepository implements ports.UserRepository on a Table.
type MemoryUserRepository struct {
	table   *Table
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewMemoryUserRepository(table *Table, tracker aggregateTracker) *MemoryUserRepository {
	return &MemoryUserRepository{
		table:   table,
		tracker: tracker,
	}
}

func (r *MemoryUserRepository) Add(_ context.Context, u user.User) error {
	if u == nil {
		return errs.NewValueIsRequiredError("user")
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if !u.ID().IsZero() {
		return fmt.Errorf("add user %s: %w", u.ID(), kernel.ErrIDIsAlreadyAssigned)
	}

	dto, err := fromDomain(u)
	if err != nil {
		return err
	}

	saved := r.table.Save(dto)
	if err = u.AssignID(kernel.ID(saved.ID)); err != nil {
		return errors.Join(err, r.table.Delete(saved.ID))
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

func (r *MemoryUserRepository) Update(_ context.Context, u user.User) error {
	if u == nil {
		return errs.NewValueIsRequiredError("user")
	}
	if err := u.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(u)
	if err != nil {
		return err
	}
	if err = r.table.Update(dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(u.ID(), u)
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.table.Delete(id.Int64())
}

func (r *MemoryUserRepository) Get(_ context.Context, id kernel.ID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.table.FindByID(id.Int64())
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id)
	}
	return toDomain(dto)
}

// FindByEmail returns the first user whose address matches case-insensitively.
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email kernel.Email) (user.User, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	matches := r.table.FindBy(func(dto UserDTO) bool {
		return strings.EqualFold(dto.Email, email.String())
	})
	if len(matches) == 0 {
		return nil, errs.NewObjectNotFoundError("user", email)
	}
	return toDomain(matches[0])
}

func (r *MemoryUserRepository) GetAll(_ context.Context) ([]user.User, error) {
	dtos := r.table.FindAll()
	users := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	return r.table.Count(), nil
}
