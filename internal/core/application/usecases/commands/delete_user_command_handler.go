package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the user as it was before deletion.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.GetForUpdate(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = userRepo.SoftDelete(ctx, aggregate.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
