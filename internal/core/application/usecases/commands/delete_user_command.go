package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand soft-deletes an account. Its orders disappear from every
// order query and are purged later.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(userID kernel.ID) (DeleteUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) UserID() kernel.ID {
	return c.userID
}
