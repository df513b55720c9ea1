package commands

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler opens a new active order.
//
// The owner's row is locked for the rest of the transaction before the
// active-order check, so concurrent requests for the same user are serialised.
// The partial unique index on orders is the final guard.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored order with its assigned id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	owner, err := uow.UserRepository().GetForUpdate(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	hasActive, err := orderRepo.HasActive(ctx, owner.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to check active orders: %w", err)
	}
	if hasActive {
		return nil, order.ErrActiveOrderAlreadyExists
	}

	aggregate, err := order.NewOrder(owner.ID())
	if err != nil {
		return nil, err
	}

	created, err := orderRepo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
