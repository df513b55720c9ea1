package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// AddOrderItemCommandHandler appends a line to an active order.
//
// Checks run in this order: the order must exist for the user (not found),
// be active (forbidden), and the product must exist (not found).
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewAddOrderItemCommandHandler(uowFactory UoWFactory, lifecycle services.OrderLifecycle) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle returns the stored item with its assigned id.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Item, error) {
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
	if err = h.lifecycle.CanAddItem(aggregate); err != nil {
		return nil, err
	}

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	line, err := h.lifecycle.AddItem(aggregate, p, cmd.Quantity())
	if err != nil {
		return nil, err
	}

	created, err := orderRepo.AddItem(ctx, line)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
