package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"testing"

	"ecommerce/internal/adapters/out/memory"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/money"
	"ecommerce/internal/seed"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/suite"
)

type userFactory struct{ factory ports.UnitOfWorkFactory }

func (f userFactory) Create() commands.UserUoW { return f.factory.Create() }

type productFactory struct{ factory ports.UnitOfWorkFactory }

func (f productFactory) Create() commands.ProductUoW { return f.factory.Create() }

type uowFactory struct{ factory ports.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.factory.Create() }

type productReadFactory struct{ factory ports.UnitOfWorkFactory }

func (f productReadFactory) Create() queries.ProductReadUoW { return f.factory.Create() }

type orderReadFactory struct{ factory ports.UnitOfWorkFactory }

func (f orderReadFactory) Create() queries.OrderReadUoW { return f.factory.Create() }

type readFactory struct{ factory ports.UnitOfWorkFactory }

func (f readFactory) Create() queries.ReadUoW { return f.factory.Create() }

type ToolsTestSuite struct {
	suite.Suite
	server *Server
}

func TestToolsTestSuite(t *testing.T) {
	suite.Run(t, new(ToolsTestSuite))
}

// SetupTest seeds the sample store: customers 1 and 2, admin 3,
// notebook 1, mouse 2, ebook 3 and course 4.
func (suite *ToolsTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := memory.NewUnitOfWorkFactory(memory.NewDatabase(), logger)
	suite.Require().NoError(seed.NewSeeder(userFactory{factory}, productFactory{factory}, logger).Run(suite.T().Context()))

	formatter, err := money.NewFormatter("USD", "en-US")
	suite.Require().NoError(err)

	suite.server = NewServer(Handlers{
		ListProducts:  queries.NewListProductsQueryHandler(productReadFactory{factory}),
		GetOrder:      queries.NewGetOrderQueryHandler(orderReadFactory{factory}),
		ListOrders:    queries.NewListOrdersQueryHandler(orderReadFactory{factory}),
		GetStatistics: queries.NewGetStatisticsQueryHandler(readFactory{factory}),
		CreateOrder:   commands.NewCreateOrderCommandHandler(uowFactory{factory}),
		AddOrderItem:  commands.NewAddOrderItemCommandHandler(uowFactory{factory}),
		ApplyDiscount: commands.NewApplyDiscountCommandHandler(uowFactory{factory}),
		AdvanceOrder:  commands.NewAdvanceOrderCommandHandler(uowFactory{factory}),
		CancelOrder:   commands.NewCancelOrderCommandHandler(uowFactory{factory}),
	}, formatter, logger)
}

func request(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func (suite *ToolsTestSuite) text(result *mcp.CallToolResult) string {
	suite.Require().NotNil(result)
	suite.Require().Len(result.Content, 1)
	content, ok := result.Content[0].(mcp.TextContent)
	suite.Require().True(ok, "expected text content")
	return content.Text
}

func (suite *ToolsTestSuite) decode(result *mcp.CallToolResult, dest any) {
	suite.Require().False(result.IsError, suite.text(result))
	suite.Require().NoError(json.Unmarshal([]byte(suite.text(result)), dest))
}

func (suite *ToolsTestSuite) createEbookOrder() queries.OrderResponse {
	result, err := suite.server.handleCreateOrder(suite.T().Context(), request("create_order", map[string]any{
		"customer_id":    1,
		"payment_method": "PIX",
		"items": []any{
			map[string]any{"product_id": float64(3), "quantity": float64(2)},
		},
	}))
	suite.Require().NoError(err)

	var created queries.OrderResponse
	suite.decode(result, &created)
	return created
}

func (suite *ToolsTestSuite) TestCreateOrder() {
	created := suite.createEbookOrder()

	suite.Equal("PENDING", created.Status)
	suite.Require().Len(created.Items, 1)
	suite.Equal("Java Programming", created.Items[0].ProductName)
	suite.Equal("99.8", created.Total.String())
	suite.True(created.ShippingCost.IsZero())
}

func (suite *ToolsTestSuite) TestCreateOrderInsufficientStockIsToolError() {
	result, err := suite.server.handleCreateOrder(suite.T().Context(), request("create_order", map[string]any{
		"customer_id":    1,
		"payment_method": "PIX",
		"items":          []any{map[string]any{"product_id": 1, "quantity": 11}},
	}))

	suite.Require().NoError(err)
	suite.True(result.IsError)
	suite.Contains(suite.text(result), "insufficient stock")
}

func (suite *ToolsTestSuite) TestMalformedArgumentsAreProtocolErrors() {
	ctx := suite.T().Context()

	_, err := suite.server.handleGetOrder(ctx, request("get_order", map[string]any{"order_id": "one"}))
	suite.ErrorIs(err, ErrInvalidArguments)

	_, err = suite.server.handleCreateOrder(ctx, request("create_order", map[string]any{
		"customer_id":    1,
		"payment_method": "PIX",
		"items":          "notebook",
	}))
	suite.ErrorIs(err, ErrInvalidArguments)

	_, err = suite.server.handleApplyDiscount(ctx, request("apply_discount", map[string]any{"order_id": 1}))
	suite.ErrorIs(err, ErrInvalidArguments)

	_, err = suite.server.handleGetOrder(ctx, request("get_order", map[string]any{"order_id": 1e300}))
	suite.ErrorIs(err, ErrInvalidArguments)
}

func (suite *ToolsTestSuite) TestRequireIntBounds() {
	for _, v := range []float64{1e300, -1e300, math.MaxInt64} {
		_, err := requireInt(map[string]any{"quantity": v}, "quantity")
		suite.ErrorIs(err, ErrInvalidArguments, "%v", v)
	}

	n, err := requireInt(map[string]any{"quantity": float64(3)}, "quantity")
	suite.Require().NoError(err)
	suite.Equal(3, n)
}

func (suite *ToolsTestSuite) TestGetMissingOrderIsToolError() {
	result, err := suite.server.handleGetOrder(suite.T().Context(), request("get_order", map[string]any{"order_id": 42}))

	suite.Require().NoError(err)
	suite.True(result.IsError)
	suite.Contains(suite.text(result), "not found")
}

func (suite *ToolsTestSuite) TestDiscountAndLifecycle() {
	ctx := suite.T().Context()
	created := suite.createEbookOrder()
	orderID := created.ID.Int64()

	result, err := suite.server.handleApplyDiscount(ctx, request("apply_discount", map[string]any{
		"order_id":   orderID,
		"percentage": 10,
	}))
	suite.Require().NoError(err)
	var discounted queries.OrderResponse
	suite.decode(result, &discounted)
	suite.Equal("89.82", discounted.Total.String())

	for _, action := range []string{"confirm", "process", "ship", "deliver"} {
		result, err = suite.server.handleAdvanceOrder(ctx, request("advance_order", map[string]any{
			"order_id": orderID,
			"action":   action,
		}))
		suite.Require().NoError(err)
		var transition struct {
			Changed bool                  `json:"changed"`
			Order   queries.OrderResponse `json:"order"`
		}
		suite.decode(result, &transition)
		suite.True(transition.Changed, action)
	}

	result, err = suite.server.handleCancelOrder(ctx, request("cancel_order", map[string]any{"order_id": orderID}))
	suite.Require().NoError(err)
	var cancelled struct {
		Changed bool                  `json:"changed"`
		Order   queries.OrderResponse `json:"order"`
	}
	suite.decode(result, &cancelled)
	suite.False(cancelled.Changed)
	suite.Equal("DELIVERED", cancelled.Order.Status)

	result, err = suite.server.handleGetStatistics(ctx, request("get_statistics", nil))
	suite.Require().NoError(err)
	var stats struct {
		Revenue          string `json:"revenue"`
		RevenueFormatted string `json:"revenueFormatted"`
		Orders           int    `json:"orders"`
	}
	suite.decode(result, &stats)
	suite.Equal(1, stats.Orders)
	suite.Equal("89.82", stats.Revenue)
	suite.Contains(stats.RevenueFormatted, "89.82")
}

func (suite *ToolsTestSuite) TestAddItemAndListOrders() {
	ctx := suite.T().Context()
	created := suite.createEbookOrder()

	result, err := suite.server.handleAddOrderItem(ctx, request("add_order_item", map[string]any{
		"order_id":   created.ID.Int64(),
		"product_id": 2,
		"quantity":   1,
	}))
	suite.Require().NoError(err)
	var updated queries.OrderResponse
	suite.decode(result, &updated)
	suite.Len(updated.Items, 2)
	suite.Equal(2, updated.Items[1].Line)

	result, err = suite.server.handleListOrders(ctx, request("list_orders", map[string]any{
		"customer_id": 1,
		"status":      "pending",
	}))
	suite.Require().NoError(err)
	var orders []queries.OrderResponse
	suite.decode(result, &orders)
	suite.Len(orders, 1)

	result, err = suite.server.handleListOrders(ctx, request("list_orders", map[string]any{"customer_id": 2}))
	suite.Require().NoError(err)
	suite.decode(result, &orders)
	suite.Empty(orders)
}

func (suite *ToolsTestSuite) TestListProducts() {
	result, err := suite.server.handleListProducts(suite.T().Context(), request("list_products", map[string]any{
		"kind":      "DIGITAL",
		"min_price": "100",
	}))
	suite.Require().NoError(err)

	var products []queries.ProductResponse
	suite.decode(result, &products)
	suite.Require().Len(products, 1)
	suite.Equal("Web Development Course", products[0].Name)

	result, err = suite.server.handleListProducts(suite.T().Context(), request("list_products", map[string]any{"kind": "BOOK"}))
	suite.Require().NoError(err)
	suite.True(result.IsError)
}
