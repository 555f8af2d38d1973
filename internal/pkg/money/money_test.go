package money_test

import (
	"strings"
	"testing"

	"ecommerce/internal/pkg/money"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	t.Run("should accept currency and locale", func(t *testing.T) {
		f, err := money.NewFormatter("brl", "pt-BR")
		require.NoError(t, err)
		assert.Equal(t, "BRL", f.Currency())
	})

	t.Run("should reject unknown currency", func(t *testing.T) {
		_, err := money.NewFormatter("XYZ1", "pt-BR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse currency")
	})

	t.Run("should reject malformed locale", func(t *testing.T) {
		_, err := money.NewFormatter("USD", "--")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse locale")
	})
}

func TestFormatter_Format(t *testing.T) {
	t.Run("should use locale separators", func(t *testing.T) {
		f, err := money.NewFormatter("BRL", "pt-BR")
		require.NoError(t, err)

		out := f.Format(decimal.RequireFromString("3500"))
		assert.True(t, strings.HasPrefix(out, "R$"), out)
		assert.True(t, strings.HasSuffix(out, "3.500,00"), out)
	})

	t.Run("should round to cents", func(t *testing.T) {
		f, err := money.NewFormatter("USD", "en-US")
		require.NoError(t, err)

		out := f.Format(decimal.RequireFromString("49.899"))
		assert.True(t, strings.HasSuffix(out, "49.90"), out)
	})
}
