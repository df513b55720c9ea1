package commands

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// AuthenticateUserCommandHandler exchanges credentials for a bearer token.
// It only reads, so it never opens a transaction.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle returns a signed token.
func (h *AuthenticateUserCommandHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	account, err := h.uowFactory.Create().UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err = h.hasher.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := h.issuer.Issue(account.ID(), account.Role())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
