package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler moves an order owned by the user to complete.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated order.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUserForUpdate(ctx, cmd.UserID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(cmd.Status()); err != nil {
		return nil, err
	}

	updated, err := orderRepo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
