package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// DeleteOrderItemCommandHandler removes a line from an order that is not complete.
type DeleteOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewDeleteOrderItemCommandHandler(uowFactory OrderUoWFactory, lifecycle services.OrderLifecycle) DeleteOrderItemCommandHandler {
	return DeleteOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle returns the removed item.
func (h *DeleteOrderItemCommandHandler) Handle(ctx context.Context, cmd DeleteOrderItemCommand) (*order.Item, error) {
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
	if err = h.lifecycle.CanChangeItems(aggregate); err != nil {
		return nil, err
	}

	line, err := orderRepo.GetItem(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if err = h.lifecycle.RemoveItem(aggregate, line); err != nil {
		return nil, err
	}

	if err = orderRepo.DeleteItem(ctx, line); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return line, nil
}
