package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

type GrantAdminCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewGrantAdminCommandHandler(uowFactory UserUoWFactory) GrantAdminCommandHandler {
	return GrantAdminCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *GrantAdminCommandHandler) Handle(ctx context.Context, cmd GrantAdminCommand) (*user.User, error) {
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
	aggregate, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}

	aggregate.GrantAdmin()
	updated, err := userRepo.Update(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
