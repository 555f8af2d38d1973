package http

import (
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type itemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type newOrderRequest struct {
	CustomerID    int64         `json:"customerId"`
	PaymentMethod string        `json:"paymentMethod"`
	Items         []itemRequest `json:"items"`
}

type discountRequest struct {
	Amount     *decimal.Decimal `json:"amount"`
	Percentage *int             `json:"percentage"`
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var (
		customerID *int64
		status     *string
	)
	if err := queryParam(ctx, "customerId", &customerID); err != nil {
		return err
	}
	if err := queryParam(ctx, "status", &status); err != nil {
		return err
	}

	var opts []queries.ListOrdersOption
	if customerID != nil {
		opts = append(opts, queries.ForCustomer(kernel.ID(*customerID)))
	}
	if status != nil {
		st, err := order.ParseStatus(*status)
		if err != nil {
			return err
		}
		opts = append(opts, queries.WithStatus(st))
	}

	query, err := queries.NewListOrdersQuery(opts...)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body newOrderRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	items := lo.Map(body.Items, func(item itemRequest, _ int) commands.ItemRequest {
		return commands.ItemRequest{ProductID: kernel.ID(item.ProductID), Quantity: item.Quantity}
	})
	cmd, err := commands.NewCreateOrderCommand(kernel.ID(body.CustomerID), body.PaymentMethod, items...)
	if err != nil {
		return err
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, createdResponse{ID: id.Int64()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	res, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

// AddOrderItem handles POST /api/v1/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body itemRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderItemCommand(id, kernel.ID(body.ProductID), body.Quantity)
	if err != nil {
		return err
	}
	line, err := s.h.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, map[string]int{"line": line})
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items/:line.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	line, err := pathInt(ctx, "line")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, line)
	if err != nil {
		return err
	}
	if err = s.h.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApplyDiscount handles POST /api/v1/orders/:id/discount.
func (s *Server) ApplyDiscount(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body discountRequest
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	var cmd commands.ApplyDiscountCommand
	switch {
	case body.Amount != nil && body.Percentage != nil:
		return errs.NewValueIsInvalidErrorWithCause("discount", errDiscountKinds)
	case body.Amount != nil:
		cmd, err = commands.NewApplyAmountDiscountCommand(id, *body.Amount)
	case body.Percentage != nil:
		cmd, err = commands.NewApplyPercentageDiscountCommand(id, *body.Percentage)
	default:
		return errs.NewValueIsRequiredErrorWithCause("discount", errDiscountKinds)
	}
	if err != nil {
		return err
	}

	total, err := s.h.ApplyDiscount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, map[string]decimal.Decimal{"total": total})
}

// AdvanceOrder handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	var body struct {
		Action string `json:"action"`
	}
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	action, err := commands.ParseAction(body.Action)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAdvanceOrderCommand(id, action)
	if err != nil {
		return err
	}

	changed, err := s.h.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, changedResponse{Changed: changed})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	changed, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, changedResponse{Changed: changed})
}
