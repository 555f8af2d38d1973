package queries_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ecommerce/internal/adapters/out/memory"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/user"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type readFactory struct{ factory ports.UnitOfWorkFactory }

func (f readFactory) Create() queries.ReadUoW { return f.factory.Create() }

type productReadFactory struct{ factory ports.UnitOfWorkFactory }

func (f productReadFactory) Create() queries.ProductReadUoW { return f.factory.Create() }

type userReadFactory struct{ factory ports.UnitOfWorkFactory }

func (f userReadFactory) Create() queries.UserReadUoW { return f.factory.Create() }

type orderReadFactory struct{ factory ports.UnitOfWorkFactory }

func (f orderReadFactory) Create() queries.OrderReadUoW { return f.factory.Create() }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type QueriesTestSuite struct {
	suite.Suite
	factory ports.UnitOfWorkFactory

	notebook *product.Physical
	mouse    *product.Physical
	ebook    *product.Digital
	joao     *user.Customer
	maria    *user.Customer
	admin    *user.Admin
	pending  *order.Order
	shipped  *order.Order
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (suite *QueriesTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewDatabase(), logger)

	ctx := suite.T().Context()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.notebook = suite.physical("Notebook Dell", "3500.00", 10)
	suite.mouse = suite.physical("Mouse Logitech", "250.00", 3)
	ebook, err := product.NewDigital(product.Info{
		Name:     "Java Programming",
		Category: "Books",
		Price:    dec("49.90"),
	}, product.Asset{DownloadURL: "https://download.com/java-book", Format: "PDF"}, time.Now())
	suite.Require().NoError(err)
	suite.ebook = ebook
	suite.ebook.SetAvailability(false)

	for _, p := range []product.Product{suite.notebook, suite.mouse, suite.ebook} {
		suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	}

	suite.joao = suite.customer("João Silva", "joao@email.com", "senha123")
	suite.maria = suite.customer("Maria Santos", "maria@email.com", "senha456")
	password, err := user.NewPassword("admin123")
	suite.Require().NoError(err)
	suite.admin, err = user.NewAdmin("Admin", kernel.MustNewEmail("admin@ecommerce.com"), password,
		user.StaffProfile{Department: "IT", EmployeeCode: "ADM001"})
	suite.Require().NoError(err)

	for _, u := range []user.User{suite.joao, suite.maria, suite.admin} {
		suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	}

	suite.pending = suite.newOrder(suite.joao.ID(), suite.mouse)
	suite.shipped = suite.newOrder(suite.maria.ID(), suite.notebook)
	suite.Require().True(suite.shipped.Confirm())
	suite.Require().True(suite.shipped.Process())
	suite.Require().True(suite.shipped.Ship())

	for _, o := range []*order.Order{suite.pending, suite.shipped} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesTestSuite) physical(name, price string, stock int) *product.Physical {
	dims, err := product.NewDimensions(dec("1"), dec("10"), dec("10"), dec("10"))
	suite.Require().NoError(err)

	p, err := product.NewPhysical(product.Info{
		Name:     name,
		Category: "Electronics",
		Price:    dec(price),
	}, dims, stock, time.Now())
	suite.Require().NoError(err)
	return p
}

func (suite *QueriesTestSuite) customer(name, email, plain string) *user.Customer {
	password, err := user.NewPassword(plain)
	suite.Require().NoError(err)

	c, err := user.NewCustomer(name, kernel.MustNewEmail(email), password, user.CustomerProfile{})
	suite.Require().NoError(err)
	return c
}

func (suite *QueriesTestSuite) newOrder(customerID kernel.ID, p product.Product) *order.Order {
	o, err := order.NewOrder(customerID, "PIX", time.Now())
	suite.Require().NoError(err)

	item, err := order.NewItem(p, 1)
	suite.Require().NoError(err)
	_, err = o.AddItem(item)
	suite.Require().NoError(err)
	return o
}

func (suite *QueriesTestSuite) TestGetProduct() {
	ctx := suite.T().Context()
	handler := queries.NewGetProductQueryHandler(productReadFactory{suite.factory})

	query, err := queries.NewGetProductQuery(suite.notebook.ID())
	suite.Require().NoError(err)
	res, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Notebook Dell", res.Name)
	suite.Equal("PHYSICAL", res.Kind)
	suite.Require().NotNil(res.Physical)
	suite.Nil(res.Digital)
	suite.Equal(10, res.Physical.Stock)

	missing, err := queries.NewGetProductQuery(99)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestListProducts() {
	ctx := suite.T().Context()
	handler := queries.NewListProductsQueryHandler(productReadFactory{suite.factory})

	testCases := []struct {
		name string
		opts []queries.ListProductsOption
		want []string
	}{
		{name: "no filter", want: []string{"Notebook Dell", "Mouse Logitech", "Java Programming"}},
		{name: "category ignores case", opts: []queries.ListProductsOption{queries.WithCategory("ELECTRONICS")}, want: []string{"Notebook Dell", "Mouse Logitech"}},
		{
			name: "inclusive price range",
			opts: []queries.ListProductsOption{queries.WithMinPrice(dec("49.90")), queries.WithMaxPrice(dec("250"))},
			want: []string{"Mouse Logitech", "Java Programming"},
		},
		{name: "available only", opts: []queries.ListProductsOption{queries.OnlyAvailable()}, want: []string{"Notebook Dell", "Mouse Logitech"}},
		{name: "digital only", opts: []queries.ListProductsOption{queries.WithKind(product.KindDigital)}, want: []string{"Java Programming"}},
		{name: "low stock", opts: []queries.ListProductsOption{queries.WithMaxStock(5)}, want: []string{"Mouse Logitech"}},
		{name: "no match", opts: []queries.ListProductsOption{queries.WithCategory("Garden")}, want: []string{}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewListProductsQuery(tc.opts...)
			suite.Require().NoError(err)

			res, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)

			names := make([]string, 0, len(res))
			for _, p := range res {
				names = append(names, p.Name)
			}
			suite.Equal(tc.want, names)
		})
	}
}

func (suite *QueriesTestSuite) TestGetDownloadLink() {
	ctx := suite.T().Context()
	handler := queries.NewGetDownloadLinkQueryHandler(productReadFactory{suite.factory})

	query, err := queries.NewGetDownloadLinkQuery(suite.ebook.ID())
	suite.Require().NoError(err)

	first, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	second, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(strings.HasPrefix(first, "https://download.com/java-book?token="))
	suite.NotEqual(first, second)
	_, err = uuid.Parse(strings.TrimPrefix(first, "https://download.com/java-book?token="))
	suite.NoError(err)

	physical, err := queries.NewGetDownloadLinkQuery(suite.mouse.ID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, physical)
	suite.True(errs.IsValidation(err))
}

func (suite *QueriesTestSuite) TestGetUser() {
	ctx := suite.T().Context()
	handler := queries.NewGetUserQueryHandler(userReadFactory{suite.factory})

	byID, err := queries.NewGetUserQuery(suite.admin.ID())
	suite.Require().NoError(err)
	res, err := handler.Handle(ctx, byID)
	suite.Require().NoError(err)
	suite.Equal("ADMIN", res.Role)
	suite.Require().NotNil(res.Staff)
	suite.Equal([]string{"CREATE", "READ", "UPDATE", "DELETE"}, res.Staff.Permissions)

	byEmail, err := queries.NewGetUserByEmailQuery("MARIA@email.com")
	suite.Require().NoError(err)
	res, err = handler.Handle(ctx, byEmail)
	suite.Require().NoError(err)
	suite.Equal(suite.maria.ID(), res.ID)
	suite.NotNil(res.Customer)
}

func (suite *QueriesTestSuite) TestListUsersByRole() {
	ctx := suite.T().Context()
	handler := queries.NewListUsersQueryHandler(userReadFactory{suite.factory})

	all, err := queries.NewListUsersQuery("")
	suite.Require().NoError(err)
	res, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Len(res, 3)

	customers, err := queries.NewListUsersQuery("customer")
	suite.Require().NoError(err)
	res, err = handler.Handle(ctx, customers)
	suite.Require().NoError(err)
	suite.Len(res, 2)

	_, err = queries.NewListUsersQuery("guest")
	suite.True(errs.IsValidation(err))
}

func (suite *QueriesTestSuite) TestAuthenticateUser() {
	ctx := suite.T().Context()
	handler := queries.NewAuthenticateUserQueryHandler(userReadFactory{suite.factory})

	testCases := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{name: "valid credentials", email: "joao@email.com", password: "senha123", want: true},
		{name: "email in other case", email: "JOAO@EMAIL.COM", password: "senha123", want: true},
		{name: "wrong password", email: "joao@email.com", password: "senha456", want: false},
		{name: "unknown email", email: "nobody@email.com", password: "senha123", want: false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			query, err := queries.NewAuthenticateUserQuery(tc.email, tc.password)
			suite.Require().NoError(err)

			res, ok, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)
			suite.Equal(tc.want, ok)
			if tc.want {
				suite.Equal("João Silva", res.Name)
			}
		})
	}
}

func (suite *QueriesTestSuite) TestGetOrder() {
	ctx := suite.T().Context()
	handler := queries.NewGetOrderQueryHandler(orderReadFactory{suite.factory})

	query, err := queries.NewGetOrderQuery(suite.shipped.ID())
	suite.Require().NoError(err)
	res, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("SHIPPED", res.Status)
	suite.Require().Len(res.Items, 1)
	suite.Equal("Notebook Dell", res.Items[0].ProductName)
	suite.True(res.Total.Equal(res.Subtotal.Add(res.ShippingCost)))
	suite.Nil(res.DeliveredAt)
}

func (suite *QueriesTestSuite) TestListOrders() {
	ctx := suite.T().Context()
	handler := queries.NewListOrdersQueryHandler(orderReadFactory{suite.factory})

	byCustomer, err := queries.NewListOrdersQuery(queries.ForCustomer(suite.joao.ID()))
	suite.Require().NoError(err)
	res, err := handler.Handle(ctx, byCustomer)
	suite.Require().NoError(err)
	suite.Require().Len(res, 1)
	suite.Equal(suite.pending.ID(), res[0].ID)

	byStatus, err := queries.NewListOrdersQuery(queries.WithStatus(order.Shipped))
	suite.Require().NoError(err)
	res, err = handler.Handle(ctx, byStatus)
	suite.Require().NoError(err)
	suite.Require().Len(res, 1)
	suite.Equal(suite.shipped.ID(), res[0].ID)

	none, err := queries.NewListOrdersQuery(queries.ForCustomer(suite.admin.ID()), queries.WithStatus(order.Pending))
	suite.Require().NoError(err)
	res, err = handler.Handle(ctx, none)
	suite.Require().NoError(err)
	suite.Empty(res)
}

func (suite *QueriesTestSuite) TestGetStatistics() {
	handler := queries.NewGetStatisticsQueryHandler(readFactory{suite.factory})

	res, err := handler.Handle(suite.T().Context(), queries.NewGetStatisticsQuery())
	suite.Require().NoError(err)

	suite.Equal(3, res.Products)
	suite.Equal(2, res.PhysicalProducts)
	suite.Equal(1, res.DigitalProducts)
	suite.Equal(3, res.Users)
	suite.Equal(2, res.Customers)
	suite.Equal(1, res.Admins)
	suite.Equal(2, res.Orders)
	suite.Equal(1, res.OrdersByStatus["PENDING"])
	suite.Equal(1, res.OrdersByStatus["SHIPPED"])
	suite.Equal(0, res.OrdersByStatus["DELIVERED"])
	suite.True(res.Revenue.IsZero())
}

func TestRevenue(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	deliveredAt := createdAt.Add(72 * time.Hour)

	restore := func(id kernel.ID, status order.Status, total string, delivered *time.Time) *order.Order {
		item, err := order.RestoreItem(1, 1, "Web Development Course", product.KindDigital, 1, dec(total), decimal.Zero)
		require.NoError(t, err)
		o, err := order.RestoreOrder(id, 1, "PIX", status, []order.Item{item}, decimal.Zero, createdAt, delivered)
		require.NoError(t, err)
		return o
	}

	orders := []*order.Order{
		restore(1, order.Delivered, "50", &deliveredAt),
		restore(2, order.Cancelled, "30", nil),
		restore(3, order.Shipped, "20", nil),
	}

	assert.Equal(t, "50", queries.Revenue(orders).String())
	assert.True(t, queries.Revenue(nil).IsZero())
}

func TestNewListProductsQuery_RejectsInvertedRange(t *testing.T) {
	_, err := queries.NewListProductsQuery(queries.WithMinPrice(dec("10")), queries.WithMaxPrice(dec("5")))
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	_, err = queries.NewListProductsQuery(queries.WithMaxStock(-1))
	require.Error(t, err)
}

func TestQueriesRequireConstructor(t *testing.T) {
	ctx := t.Context()

	_, err := queries.NewGetOrderQueryHandler(nil).Handle(ctx, queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)

	_, err = queries.NewGetStatisticsQueryHandler(nil).Handle(ctx, queries.GetStatisticsQuery{})
	require.ErrorIs(t, err, queries.ErrGetStatisticsQueryIsNotConstructed)
}
