package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// UpdateOrderItemCommandHandler changes the quantity of a line on an order that is not complete.
type UpdateOrderItemCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewUpdateOrderItemCommandHandler(uowFactory UoWFactory, lifecycle services.OrderLifecycle) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle returns the updated item. An unknown product is reported as a product
// mismatch, because the stored product of a line always exists.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) (*order.Item, error) {
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

	p, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	if err = h.lifecycle.ReviseItem(aggregate, line, p, cmd.Quantity()); err != nil {
		return nil, err
	}

	updated, err := orderRepo.UpdateItem(ctx, line)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
