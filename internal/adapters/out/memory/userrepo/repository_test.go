package userrepo_test

import (
	"testing"

	"ecommerce/internal/adapters/out/memory/userrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

func newRepository(t *testing.T) (*userrepo.MemoryUserRepository, *MockAggregateTracker) {
	t.Helper()
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return userrepo.NewMemoryUserRepository(userrepo.NewTable(nil), tracker), tracker
}

func newCustomer(t *testing.T, email string) *user.Customer {
	t.Helper()
	password, err := user.NewPassword("senha123")
	require.NoError(t, err)
	c, err := user.NewCustomer("João Silva", kernel.MustNewEmail(email), password, user.CustomerProfile{
		FiscalID: "12345678901",
		Address:  "Rua A, 123",
		Phone:    "11987654321",
	})
	require.NoError(t, err)
	return c
}

func newAdmin(t *testing.T) *user.Admin {
	t.Helper()
	password, err := user.NewPassword("admin123")
	require.NoError(t, err)
	a, err := user.NewAdmin("Admin", kernel.MustNewEmail("admin@ecommerce.com"), password,
		user.StaffProfile{Department: "IT", EmployeeCode: "ADM001"})
	require.NoError(t, err)
	return a
}

func TestMemoryUserRepository_AddGet(t *testing.T) {
	ctx := t.Context()
	repo, tracker := newRepository(t)
	customer := newCustomer(t, "joao@email.com")
	admin := newAdmin(t)

	require.NoError(t, repo.Add(ctx, customer))
	require.NoError(t, repo.Add(ctx, admin))
	tracker.AssertNumberOfCalls(t, "TrackAggregate", 2)

	got, err := repo.Get(ctx, customer.ID())
	require.NoError(t, err)
	restored, ok := got.(*user.Customer)
	require.True(t, ok)
	assert.Equal(t, customer.Profile(), restored.Profile())
	assert.True(t, restored.Authenticate("senha123"))

	got, err = repo.Get(ctx, admin.ID())
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, got.Role())
	assert.Equal(t, "ADM001", got.(*user.Admin).Staff().EmployeeCode)

	_, err = repo.Get(ctx, 42)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryUserRepository_FindByEmail(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository(t)
	customer := newCustomer(t, "Joao@Email.com")
	require.NoError(t, repo.Add(ctx, customer))

	got, err := repo.FindByEmail(ctx, kernel.MustNewEmail("JOAO@email.COM"))
	require.NoError(t, err)
	assert.Equal(t, customer.ID(), got.ID())

	_, err = repo.FindByEmail(ctx, kernel.MustNewEmail("maria@email.com"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryUserRepository_UpdateDelete(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository(t)
	customer := newCustomer(t, "joao@email.com")
	require.NoError(t, repo.Add(ctx, customer))

	customer.Deactivate()
	require.NoError(t, repo.Update(ctx, customer))
	got, err := repo.Get(ctx, customer.ID())
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	require.NoError(t, repo.Delete(ctx, customer.ID()))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.ErrorIs(t, repo.Update(ctx, customer), errs.ErrObjectNotFound)
	require.ErrorIs(t, repo.Delete(ctx, customer.ID()), errs.ErrObjectNotFound)
}

func TestMemoryUserRepository_GetAll(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository(t)
	require.NoError(t, repo.Add(ctx, newCustomer(t, "joao@email.com")))
	require.NoError(t, repo.Add(ctx, newAdmin(t)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, user.RoleCustomer, all[0].Role())
	assert.Equal(t, user.RoleAdmin, all[1].Role())
}
