package orderrepo_test

import (
	"testing"
	"time"

	"ecommerce/internal/adapters/out/memory/orderrepo"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
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

func newRepository() (*orderrepo.MemoryOrderRepository, *MockAggregateTracker) {
	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	return orderrepo.NewMemoryOrderRepository(orderrepo.NewTable(nil), tracker), tracker
}

func newOrderWithItems(t *testing.T, customerID kernel.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(customerID, "CREDIT_CARD", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	dims, err := product.NewDimensions(decimal.NewFromFloat(0.3), decimal.NewFromInt(7), decimal.NewFromInt(12), decimal.NewFromInt(5))
	require.NoError(t, err)
	mouse, err := product.NewPhysical(product.Info{Name: "Mouse Logitech", Category: "Electronics", Price: decimal.NewFromInt(250)},
		dims, 50, time.Now())
	require.NoError(t, err)
	require.NoError(t, mouse.AssignID(2))

	item, err := order.NewItem(mouse, 2)
	require.NoError(t, err)
	_, err = o.AddItem(item)
	require.NoError(t, err)
	require.NoError(t, o.ApplyDiscountAmount(decimal.NewFromInt(20)))
	return o
}

type orderView struct {
	ID, CustomerID               kernel.ID
	Status                       order.Status
	Subtotal, Shipping, Discount string
	Total                        string
	Lines                        []int
}

func view(o *order.Order) orderView {
	lines := make([]int, 0, len(o.Items()))
	for _, item := range o.Items() {
		lines = append(lines, item.Line())
	}
	return orderView{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Status:     o.Status(),
		Subtotal:   o.Subtotal().StringFixed(2),
		Shipping:   o.ShippingCost().StringFixed(2),
		Discount:   o.Discount().StringFixed(2),
		Total:      o.Total().StringFixed(2),
		Lines:      lines,
	}
}

func TestMemoryOrderRepository_AddGet(t *testing.T) {
	ctx := t.Context()
	repo, tracker := newRepository()
	o := newOrderWithItems(t, 1)

	require.NoError(t, repo.Add(ctx, o))
	assert.Equal(t, kernel.ID(1), o.ID())
	tracker.AssertCalled(t, "TrackAggregate", kernel.ID(1), o)

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	if diff := cmp.Diff(view(o), view(got)); diff != "" {
		t.Errorf("restored order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "490.75", got.Total().StringFixed(2))

	_, err = repo.Get(ctx, 77)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository()
	o := newOrderWithItems(t, 1)
	require.NoError(t, repo.Add(ctx, o))

	require.True(t, o.Confirm())
	require.True(t, o.Process())
	require.True(t, o.Ship())
	deliveredAt := time.Date(2026, 5, 3, 14, 0, 0, 0, time.UTC)
	require.True(t, o.Deliver(deliveredAt))
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, got.Status())
	at, ok := got.DeliveredAt()
	require.True(t, ok)
	assert.Equal(t, deliveredAt, at)

	fresh := newOrderWithItems(t, 1)
	require.NoError(t, fresh.AssignID(9))
	require.ErrorIs(t, repo.Update(ctx, fresh), errs.ErrObjectNotFound)
}

func TestMemoryOrderRepository_FindByCustomer(t *testing.T) {
	ctx := t.Context()
	repo, _ := newRepository()
	require.NoError(t, repo.Add(ctx, newOrderWithItems(t, 1)))
	require.NoError(t, repo.Add(ctx, newOrderWithItems(t, 2)))
	require.NoError(t, repo.Add(ctx, newOrderWithItems(t, 1)))

	orders, err := repo.FindByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, kernel.ID(1), orders[0].ID())
	assert.Equal(t, kernel.ID(3), orders[1].ID())

	none, err := repo.FindByCustomer(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(ctx, 2))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
