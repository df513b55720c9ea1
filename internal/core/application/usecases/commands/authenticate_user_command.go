package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAuthenticateUserCommandIsNotConstructed = errors.New(
		"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
	)

	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errs.NewNotAuthenticatedError("Invalid email or password")
)

type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(email, password string) (AuthenticateUserCommand, error) {
	var problems []error
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		problems = append(problems, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(problems...); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return AuthenticateUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Email() string {
	return c.email
}

func (c AuthenticateUserCommand) Password() string {
	return c.password
}
