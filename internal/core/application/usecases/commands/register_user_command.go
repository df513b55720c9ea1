package commands

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand carries the profile and the clear-text password of a new account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email     string
	firstName string
	lastName  string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand only checks presence; the user aggregate validates the profile.
func NewRegisterUserCommand(email, firstName, lastName, password string) (RegisterUserCommand, error) {
	if strings.TrimSpace(password) == "" {
		return RegisterUserCommand{}, errs.NewValueIsRequiredError("password")
	}

	return RegisterUserCommand{
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c RegisterUserCommand) Password() string {
	return c.password
}
