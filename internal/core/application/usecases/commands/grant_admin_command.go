package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGrantAdminCommandIsNotConstructed = errors.New(
	"GrantAdminCommand must be created via NewGrantAdminCommand constructor",
)

// GrantAdminCommand promotes an existing account. It is only reachable from the CLI.
type GrantAdminCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

func NewGrantAdminCommand(email string) (GrantAdminCommand, error) {
	if email == "" {
		return GrantAdminCommand{}, errs.NewValueIsRequiredError("email")
	}

	return GrantAdminCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c GrantAdminCommand) Validate() error {
	return c.guard.Validate(ErrGrantAdminCommandIsNotConstructed)
}

func (c GrantAdminCommand) Email() string {
	return c.email
}
