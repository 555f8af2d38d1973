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

func TestDimensions_ShippingCost(t *testing.T) {
	testCases := []struct {
		name                          string
		weight, length, width, height string
		expected                      string
	}{
		// 25×35×20/6000 = 2.9166… beats 2.5 kg
		{name: "volumetric_weight_wins", weight: "2.5", length: "25", width: "35", height: "20", expected: "17.29"},
		// 12×7×5/6000 = 0.07 loses to 0.3 kg
		{name: "actual_weight_wins", weight: "0.3", length: "12", width: "7", height: "5", expected: "10.75"},
		{name: "weightless_pays_base_fee", weight: "0", length: "0", width: "0", height: "0", expected: "10"},
		{name: "exact_volumetric", weight: "1", length: "60", width: "10", height: "20", expected: "15"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dims := mustDimensions(t, tc.weight, tc.length, tc.width, tc.height)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(dims.ShippingCost()),
				"got %s", dims.ShippingCost())
		})
	}
}

func TestNewDimensions_RejectsNegativeMeasures(t *testing.T) {
	_, err := product.NewDimensions(decimal.NewFromInt(-1), decimal.Zero, decimal.NewFromInt(-2), decimal.Zero)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "weight")
	assert.Contains(t, err.Error(), "width")

	var zero product.Dimensions
	err = zero.Validate()
	require.ErrorIs(t, err, product.ErrDimensionsIsNotConstructed)
	assert.Equal(t, "dimensions must be created via NewDimensions", err.Error())
}

func TestPhysical_Stock(t *testing.T) {
	newPhysical := func(t *testing.T, stock int) *product.Physical {
		t.Helper()
		p, err := product.NewPhysical(randomInfo(), mustDimensions(t, "1", "1", "1", "1"), stock, time.Now())
		require.NoError(t, err)
		return p
	}

	t.Run("should_reject_negative_initial_stock", func(t *testing.T) {
		_, err := product.NewPhysical(randomInfo(), mustDimensions(t, "1", "1", "1", "1"), -1, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_report_stock_levels", func(t *testing.T) {
		p := newPhysical(t, 3)
		assert.True(t, p.InStock())
		assert.True(t, p.HasStock(3))
		assert.False(t, p.HasStock(4))
		assert.False(t, newPhysical(t, 0).InStock())
	})

	t.Run("should_reduce_and_add_stock", func(t *testing.T) {
		p := newPhysical(t, 10)

		require.NoError(t, p.ReduceStock(3))
		assert.Equal(t, 7, p.Stock())

		require.NoError(t, p.AddStock(3))
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("should_never_go_negative", func(t *testing.T) {
		for range 50 {
			stock := gofakeit.Number(0, 20)
			p := newPhysical(t, stock)
			qty := gofakeit.Number(1, 40)

			err := p.ReduceStock(qty)
			if qty > stock {
				require.ErrorIs(t, err, errs.ErrInsufficientStock)
				assert.Equal(t, stock, p.Stock())
			} else {
				require.NoError(t, err)
				assert.Equal(t, stock-qty, p.Stock())
			}
			assert.GreaterOrEqual(t, p.Stock(), 0)
		}
	})

	t.Run("should_reject_non_positive_quantities", func(t *testing.T) {
		p := newPhysical(t, 5)
		require.ErrorIs(t, p.ReduceStock(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, p.AddStock(-2), errs.ErrValueIsInvalid)
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("should_ship_by_dimensions", func(t *testing.T) {
		p, err := product.NewPhysical(randomInfo(), mustDimensions(t, "0.3", "12", "7", "5"), 1, time.Now())
		require.NoError(t, err)
		assert.Equal(t, product.KindPhysical, p.Kind())
		assert.Equal(t, "10.75", p.ShippingCost().String())
	})
}

func TestRestorePhysical(t *testing.T) {
	dims := mustDimensions(t, "1", "1", "1", "1")
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	p, err := product.RestorePhysical(9, randomInfo(), created, false, dims, 4)
	require.NoError(t, err)
	assert.EqualValues(t, 9, p.ID())
	assert.False(t, p.IsAvailable())
	assert.Equal(t, 4, p.Stock())
	assert.Equal(t, created, p.CreatedAt())

	_, err = product.RestorePhysical(0, randomInfo(), created, true, dims, 4)
	require.Error(t, err)
}
