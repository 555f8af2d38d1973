package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler applies a lifecycle step. A step that does not
// fit the current status leaves the order untouched and reports false.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewAdvanceOrderCommandHandler(uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle reports whether the status changed.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !h.apply(o, cmd.Action()) {
		return false, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (h AdvanceOrderCommandHandler) apply(o *order.Order, action Action) bool {
	switch action {
	case ActionConfirm:
		return o.Confirm()
	case ActionProcess:
		return o.Process()
	case ActionShip:
		return o.Ship()
	case ActionDeliver:
		return o.Deliver(h.now())
	default:
		return false
	}
}
