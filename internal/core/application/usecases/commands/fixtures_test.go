package commands_test

import (
	"testing"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func storedNotebook(t *testing.T, id kernel.ID, stock int) *product.Physical {
	t.Helper()

	dims, err := product.NewDimensions(
		decimal.RequireFromString("2.5"),
		decimal.NewFromInt(35),
		decimal.NewFromInt(25),
		decimal.NewFromInt(20),
	)
	require.NoError(t, err)

	p, err := product.RestorePhysical(id, product.Info{
		Name:     "Notebook Dell",
		Category: "Electronics",
		Price:    decimal.NewFromInt(3500),
	}, time.Now(), true, dims, stock)
	require.NoError(t, err)
	return p
}

func storedEbook(t *testing.T, id kernel.ID) *product.Digital {
	t.Helper()

	p, err := product.RestoreDigital(id, product.Info{
		Name:     "Java Programming",
		Category: "Books",
		Price:    decimal.RequireFromString("49.90"),
	}, time.Now(), true, product.Asset{
		DownloadURL: "https://download.com/java-book",
		Format:      "PDF",
	})
	require.NoError(t, err)
	return p
}

func storedCustomer(t *testing.T, id kernel.ID, address string) *user.Customer {
	t.Helper()

	email, err := kernel.NewEmail(address)
	require.NoError(t, err)
	password, err := user.NewPassword("senha123")
	require.NoError(t, err)

	c, err := user.RestoreCustomer(id, "João Silva", email, password, true, user.CustomerProfile{})
	require.NoError(t, err)
	return c
}

func storedAdmin(t *testing.T, id kernel.ID) *user.Admin {
	t.Helper()

	email, err := kernel.NewEmail("admin@ecommerce.com")
	require.NoError(t, err)
	password, err := user.NewPassword("admin123")
	require.NoError(t, err)

	a, err := user.RestoreAdmin(id, "Admin", email, password, true, user.StaffProfile{Department: "IT"})
	require.NoError(t, err)
	return a
}

// storedOrder builds a persisted order holding qty units of each product.
func storedOrder(t *testing.T, id kernel.ID, customerID kernel.ID, qty int, products ...product.Product) *order.Order {
	t.Helper()

	o, err := order.NewOrder(customerID, "PIX", time.Now())
	require.NoError(t, err)
	for _, p := range products {
		item, err := order.NewItem(p, qty)
		require.NoError(t, err)
		_, err = o.AddItem(item)
		require.NoError(t, err)
	}
	require.NoError(t, o.AssignID(id))
	return o
}
