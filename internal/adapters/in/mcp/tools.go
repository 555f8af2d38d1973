package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
)

// ErrInvalidArguments marks arguments that do not match the tool schema.
var ErrInvalidArguments = errors.New("invalid arguments")

func (s *Server) handleListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var opts []queries.ListProductsOption
	if category, ok, err := optionalString(args, "category"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, queries.WithCategory(category))
	}
	if kind, ok, err := optionalString(args, "kind"); err != nil {
		return nil, err
	} else if ok {
		k, parseErr := product.ParseKind(kind)
		if parseErr != nil {
			return toolError(parseErr), nil
		}
		opts = append(opts, queries.WithKind(k))
	}
	if price, ok, err := optionalDecimal(args, "min_price"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, queries.WithMinPrice(price))
	}
	if price, ok, err := optionalDecimal(args, "max_price"); err != nil {
		return nil, err
	} else if ok {
		opts = append(opts, queries.WithMaxPrice(price))
	}
	if request.GetBool("only_available", false) {
		opts = append(opts, queries.OnlyAvailable())
	}

	query, err := queries.NewListProductsQuery(opts...)
	if err != nil {
		return toolError(err), nil
	}
	products, err := s.h.ListProducts.Handle(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(products)
}

func (s *Server) handleGetOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(request.GetArguments(), "order_id")
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return toolError(err), nil
	}
	res, err := s.h.GetOrder.Handle(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(res)
}

func (s *Server) handleListOrders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var opts []queries.ListOrdersOption
	if _, present := args["customer_id"]; present {
		id, err := requireID(args, "customer_id")
		if err != nil {
			return nil, err
		}
		opts = append(opts, queries.ForCustomer(id))
	}
	if status, ok, err := optionalString(args, "status"); err != nil {
		return nil, err
	} else if ok {
		st, parseErr := order.ParseStatus(status)
		if parseErr != nil {
			return toolError(parseErr), nil
		}
		opts = append(opts, queries.WithStatus(st))
	}

	query, err := queries.NewListOrdersQuery(opts...)
	if err != nil {
		return toolError(err), nil
	}
	orders, err := s.h.ListOrders.Handle(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(orders)
}

func (s *Server) handleCreateOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	customerID, err := requireID(args, "customer_id")
	if err != nil {
		return nil, err
	}
	paymentMethod, err := request.RequireString("payment_method")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	items, err := itemRequests(args)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, paymentMethod, items...)
	if err != nil {
		return toolError(err), nil
	}
	id, err := s.h.CreateOrder.Handle(ctx, cmd)
	if err != nil {
		return toolError(err), nil
	}
	return s.orderResult(ctx, id)
}

func (s *Server) handleAddOrderItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	orderID, err := requireID(args, "order_id")
	if err != nil {
		return nil, err
	}
	productID, err := requireID(args, "product_id")
	if err != nil {
		return nil, err
	}
	quantity, err := requireInt(args, "quantity")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, quantity)
	if err != nil {
		return toolError(err), nil
	}
	if _, err = s.h.AddOrderItem.Handle(ctx, cmd); err != nil {
		return toolError(err), nil
	}
	return s.orderResult(ctx, orderID)
}

func (s *Server) handleApplyDiscount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	orderID, err := requireID(args, "order_id")
	if err != nil {
		return nil, err
	}
	amount, hasAmount, err := optionalDecimal(args, "amount")
	if err != nil {
		return nil, err
	}
	_, hasPercentage := args["percentage"]
	if hasAmount == hasPercentage {
		return nil, fmt.Errorf("%w: exactly one of amount and percentage is required", ErrInvalidArguments)
	}

	var cmd commands.ApplyDiscountCommand
	if hasAmount {
		cmd, err = commands.NewApplyAmountDiscountCommand(orderID, amount)
	} else {
		percentage, intErr := requireInt(args, "percentage")
		if intErr != nil {
			return nil, intErr
		}
		cmd, err = commands.NewApplyPercentageDiscountCommand(orderID, percentage)
	}
	if err != nil {
		return toolError(err), nil
	}

	if _, err = s.h.ApplyDiscount.Handle(ctx, cmd); err != nil {
		return toolError(err), nil
	}
	return s.orderResult(ctx, orderID)
}

func (s *Server) handleAdvanceOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := requireID(request.GetArguments(), "order_id")
	if err != nil {
		return nil, err
	}
	raw, err := request.RequireString("action")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}

	action, err := commands.ParseAction(raw)
	if err != nil {
		return toolError(err), nil
	}
	cmd, err := commands.NewAdvanceOrderCommand(orderID, action)
	if err != nil {
		return toolError(err), nil
	}
	changed, err := s.h.AdvanceOrder.Handle(ctx, cmd)
	if err != nil {
		return toolError(err), nil
	}
	return s.transitionResult(ctx, orderID, changed)
}

func (s *Server) handleCancelOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := requireID(request.GetArguments(), "order_id")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return toolError(err), nil
	}
	changed, err := s.h.CancelOrder.Handle(ctx, cmd)
	if err != nil {
		return toolError(err), nil
	}
	return s.transitionResult(ctx, orderID, changed)
}

func (s *Server) handleGetStatistics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.h.GetStatistics.Handle(ctx, queries.NewGetStatisticsQuery())
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(struct {
		queries.StatisticsResponse
		RevenueFormatted string `json:"revenueFormatted"`
	}{
		StatisticsResponse: stats,
		RevenueFormatted:   s.formatter.Format(stats.Revenue),
	})
}

func (s *Server) orderResult(ctx context.Context, id kernel.ID) (*mcp.CallToolResult, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return toolError(err), nil
	}
	res, err := s.h.GetOrder.Handle(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(res)
}

func (s *Server) transitionResult(ctx context.Context, id kernel.ID, changed bool) (*mcp.CallToolResult, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return toolError(err), nil
	}
	res, err := s.h.GetOrder.Handle(ctx, query)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(map[string]any{
		"changed": changed,
		"order":   res,
	})
}

func toolError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// requireInt accepts JSON numbers without a fractional part.
func requireInt(args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArguments, key)
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArguments, key)
		}
		if v < math.MinInt || v >= math.MaxInt {
			return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidArguments, key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArguments, key)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArguments, key)
	}
}

func requireID(args map[string]any, key string) (kernel.ID, error) {
	v, err := requireInt(args, key)
	if err != nil {
		return 0, err
	}
	return kernel.ID(v), nil
}

func optionalString(args map[string]any, key string) (string, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string", ErrInvalidArguments, key)
	}
	return s, true, nil
}

// optionalDecimal accepts a decimal string or a JSON number.
func optionalDecimal(args map[string]any, key string) (decimal.Decimal, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return decimal.Zero, false, nil
	}
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("%w: %s: %w", ErrInvalidArguments, key, err)
		}
		return d, true, nil
	case float64:
		return decimal.NewFromFloat(v), true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("%w: %s must be a decimal string", ErrInvalidArguments, key)
	}
}

func itemRequests(args map[string]any) ([]commands.ItemRequest, error) {
	raw, ok := args["items"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: items must be an array", ErrInvalidArguments)
	}

	items := make([]commands.ItemRequest, 0, len(list))
	for i, entry := range list {
		fields, isObject := entry.(map[string]any)
		if !isObject {
			return nil, fmt.Errorf("%w: items[%d] must be an object", ErrInvalidArguments, i)
		}
		productID, err := requireID(fields, "product_id")
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		quantity, err := requireInt(fields, "quantity")
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, commands.ItemRequest{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}
