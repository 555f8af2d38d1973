package product_test

import (
	"testing"
	"time"

	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDigital(t *testing.T) {
	t.Run("should_never_charge_shipping", func(t *testing.T) {
		d, err := product.NewDigital(randomInfo(), product.Asset{
			DownloadURL:   "https://download.com/java-book",
			FileSizeMB:    decimal.RequireFromString("15.5"),
			Format:        "PDF",
			DownloadLimit: 5,
			ValidityDays:  365,
		}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, product.KindDigital, d.Kind())
		assert.True(t, d.ShippingCost().IsZero())
		assert.Equal(t, "PDF", d.Asset().Format)
	})

	t.Run("should_validate_asset", func(t *testing.T) {
		testCases := []struct {
			name  string
			asset product.Asset
			want  error
		}{
			{name: "missing_url", asset: product.Asset{}, want: errs.ErrValueIsRequired},
			{name: "relative_url", asset: product.Asset{DownloadURL: "files/book.pdf"}, want: errs.ErrValueIsInvalid},
			{
				name:  "negative_size",
				asset: product.Asset{DownloadURL: "https://x.io/a", FileSizeMB: decimal.NewFromInt(-1)},
				want:  errs.ErrValueIsInvalid,
			},
			{
				name:  "negative_limit",
				asset: product.Asset{DownloadURL: "https://x.io/a", DownloadLimit: -1},
				want:  errs.ErrValueIsInvalid,
			},
			{
				name:  "negative_validity",
				asset: product.Asset{DownloadURL: "https://x.io/a", ValidityDays: -1},
				want:  errs.ErrValueIsInvalid,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := product.NewDigital(randomInfo(), tc.asset, time.Now())
				require.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestDigital_DownloadLink(t *testing.T) {
	d, err := product.NewDigital(randomInfo(), product.Asset{DownloadURL: "https://download.com/web-course"}, time.Now())
	require.NoError(t, err)

	t.Run("should_append_token", func(t *testing.T) {
		token := gofakeit.UUID()
		link, err := d.DownloadLink(token)
		require.NoError(t, err)
		assert.Equal(t, "https://download.com/web-course?token="+token, link)
	})

	t.Run("should_differ_per_token", func(t *testing.T) {
		first, err := d.DownloadLink(gofakeit.UUID())
		require.NoError(t, err)
		second, err := d.DownloadLink(gofakeit.UUID())
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("should_extend_existing_query", func(t *testing.T) {
		withQuery, err := product.NewDigital(randomInfo(), product.Asset{DownloadURL: "https://cdn.io/f?v=2"}, time.Now())
		require.NoError(t, err)

		link, err := withQuery.DownloadLink("abc")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.io/f?v=2&token=abc", link)
	})

	t.Run("should_require_token", func(t *testing.T) {
		_, err := d.DownloadLink("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
