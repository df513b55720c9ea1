package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPurgeDeletedUsersCommandIsNotConstructed = errors.New(
	"PurgeDeletedUsersCommand must be created via NewPurgeDeletedUsersCommand constructor",
)

// PurgeDeletedUsersCommand removes users soft-deleted before the cutoff, with their orders.
type PurgeDeletedUsersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewPurgeDeletedUsersCommand(cutoff time.Time) (PurgeDeletedUsersCommand, error) {
	if cutoff.IsZero() {
		return PurgeDeletedUsersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return PurgeDeletedUsersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeDeletedUsersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeletedUsersCommandIsNotConstructed)
}

func (c PurgeDeletedUsersCommand) Cutoff() time.Time {
	return c.cutoff
}
