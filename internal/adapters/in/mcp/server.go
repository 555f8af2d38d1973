package mcp

import (
	"context"
	"log/slog"
	"os"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/pkg/money"

	"github.com/mark3labs/mcp-go/server"
)

const (
	// ServerName is the MCP server name
	ServerName = "ecommerce-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Handlers groups the use cases exposed as tools.
type Handlers struct {
	ListProducts  queries.ListProductsQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	GetStatistics queries.GetStatisticsQueryHandler

	CreateOrder   commands.CreateOrderCommandHandler
	AddOrderItem  commands.AddOrderItemCommandHandler
	ApplyDiscount commands.ApplyDiscountCommandHandler
	AdvanceOrder  commands.AdvanceOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler
}

// Server wraps the MCP server with the shop use cases.
type Server struct {
	mcp       *server.MCPServer
	h         Handlers
	formatter money.Formatter
	logger    *slog.Logger
}

func NewServer(handlers Handlers, formatter money.Formatter, logger *slog.Logger) *Server {
	s := &Server{
		mcp:       server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(false)),
		h:         handlers,
		formatter: formatter,
		logger:    logger.With("component", "mcp"),
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdin/stdout until the input closes or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "MCP server listening on stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listProductsTool(), s.handleListProducts)
	s.mcp.AddTool(getOrderTool(), s.handleGetOrder)
	s.mcp.AddTool(listOrdersTool(), s.handleListOrders)
	s.mcp.AddTool(createOrderTool(), s.handleCreateOrder)
	s.mcp.AddTool(addOrderItemTool(), s.handleAddOrderItem)
	s.mcp.AddTool(applyDiscountTool(), s.handleApplyDiscount)
	s.mcp.AddTool(advanceOrderTool(), s.handleAdvanceOrder)
	s.mcp.AddTool(cancelOrderTool(), s.handleCancelOrder)
	s.mcp.AddTool(getStatisticsTool(), s.handleGetStatistics)
}
