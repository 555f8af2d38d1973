package user_test

import (
	"strings"
	"testing"

	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	t.Run("should_hash_and_match", func(t *testing.T) {
		p, err := user.NewPassword("senha123")
		require.NoError(t, err)
		require.NoError(t, p.Validate())

		assert.NotEqual(t, []byte("senha123"), p.Hash())
		assert.True(t, p.Matches("senha123"))
		assert.False(t, p.Matches("senha124"))
	})

	t.Run("should_reject_short_secret", func(t *testing.T) {
		_, err := user.NewPassword("12345")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_secret_longer_than_bcrypt_accepts", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("a", 73))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestorePassword(t *testing.T) {
	p, err := user.NewPassword("admin123")
	require.NoError(t, err)

	restored, err := user.RestorePassword(p.Hash())
	require.NoError(t, err)
	assert.True(t, restored.Matches("admin123"))

	_, err = user.RestorePassword([]byte("not-a-hash"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPassword_ZeroValue(t *testing.T) {
	var p user.Password
	require.ErrorIs(t, p.Validate(), user.ErrPasswordIsNotConstructed)
	assert.False(t, p.Matches(""))
}

func TestParseRole(t *testing.T) {
	r, err := user.ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)
	assert.Equal(t, "ADMIN", r.String())

	r, err = user.ParseRole("Customer")
	require.NoError(t, err)
	assert.Equal(t, user.RoleCustomer, r)

	_, err = user.ParseRole("root")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", user.Role(42).String())
}
