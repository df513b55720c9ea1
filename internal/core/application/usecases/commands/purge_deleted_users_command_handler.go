package commands

import (
	"context"
	"fmt"
)

// PurgeResult counts the rows removed by one purge.
type PurgeResult struct {
	Users  int64
	Orders int64
}

// PurgeDeletedUsersCommandHandler hard-deletes expired accounts in one transaction:
// items, then orders, then the user rows.
type PurgeDeletedUsersCommandHandler struct {
	uowFactory UoWFactory
}

func NewPurgeDeletedUsersCommandHandler(uowFactory UoWFactory) PurgeDeletedUsersCommandHandler {
	return PurgeDeletedUsersCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *PurgeDeletedUsersCommandHandler) Handle(ctx context.Context, cmd PurgeDeletedUsersCommand) (PurgeResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurgeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	expired, err := userRepo.ListDeletedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return PurgeResult{}, fmt.Errorf("failed to list deleted users: %w", err)
	}
	if len(expired) == 0 {
		return PurgeResult{}, nil
	}

	orders, err := uow.OrderRepository().PurgeForUsers(ctx, expired)
	if err != nil {
		return PurgeResult{}, fmt.Errorf("failed to purge orders: %w", err)
	}

	users, err := userRepo.Purge(ctx, expired)
	if err != nil {
		return PurgeResult{}, fmt.Errorf("failed to purge users: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return PurgeResult{}, err
	}

	return PurgeResult{Users: users, Orders: orders}, nil
}
