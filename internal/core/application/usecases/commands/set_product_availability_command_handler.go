package commands

import (
	"context"
)

type SetProductAvailabilityCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewSetProductAvailabilityCommandHandler(uowFactory ProductUoWFactory) SetProductAvailabilityCommandHandler {
	return SetProductAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetProductAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetProductAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if p.IsAvailable() == cmd.Available() {
		return nil
	}

	p.SetAvailability(cmd.Available())
	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
