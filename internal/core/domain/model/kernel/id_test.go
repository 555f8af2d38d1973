package kernel_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Run("should_parse_positive_identity", func(t *testing.T) {
		id, err := kernel.ParseID("42")
		require.NoError(t, err)
		assert.Equal(t, kernel.ID(42), id)
		assert.Equal(t, "42", id.String())
		assert.Equal(t, int64(42), id.Int64())
	})

	t.Run("should_reject_garbage", func(t *testing.T) {
		_, err := kernel.ParseID("abc")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_reject_unassigned_identity", func(t *testing.T) {
		for _, raw := range []string{"0", "-3"} {
			_, err := kernel.ParseID(raw)
			require.ErrorIs(t, err, errs.ErrValueIsRequired, raw)
		}
	})
}

func TestID_IsZero(t *testing.T) {
	var id kernel.ID
	assert.True(t, id.IsZero())
	require.Error(t, id.Validate())
	assert.False(t, kernel.ID(1).IsZero())
}
