package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand replaces the profile of an account. Passwords and roles are not touched.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.ID
	email     string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(userID kernel.ID, email, firstName, lastName string) (UpdateUserCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateUserCommand{}, err
	}

	return UpdateUserCommand{
		userID:    userID,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) UserID() kernel.ID {
	return c.userID
}

func (c UpdateUserCommand) Email() string {
	return c.email
}

func (c UpdateUserCommand) FirstName() string {
	return c.firstName
}

func (c UpdateUserCommand) LastName() string {
	return c.lastName
}
