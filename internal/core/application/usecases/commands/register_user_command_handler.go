package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RegisterUserCommandHandler creates an account with the default role.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the stored user. A taken email fails with user.ErrEmailAlreadyTaken
// before the password is hashed.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
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
	if err := ensureEmailIsFree(ctx, userRepo, cmd.Email(), nil); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	aggregate, err := user.NewUser(cmd.Email(), cmd.FirstName(), cmd.LastName(), hash)
	if err != nil {
		return nil, err
	}

	created, err := userRepo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// ensureEmailIsFree fails when email belongs to a live user other than self.
func ensureEmailIsFree(ctx context.Context, repo ports.UserRepository, email string, self *user.User) error {
	existing, err := repo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if self != nil && existing.ID().IsEqual(self.ID()) {
		return nil
	}
	return user.ErrEmailAlreadyTaken
}
