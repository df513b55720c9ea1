package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the updated user.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
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
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateProfile(cmd.Email(), cmd.FirstName(), cmd.LastName()); err != nil {
		return nil, err
	}
	if err = ensureEmailIsFree(ctx, userRepo, aggregate.Email(), aggregate); err != nil {
		return nil, err
	}

	updated, err := userRepo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
