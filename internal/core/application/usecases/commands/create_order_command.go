package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new active order for a user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(pathUserID, bodyUserID)
//	if err != nil {
//	    return err // Mismatched user ids
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that the user named in the body is the user of the path.
func NewCreateOrderCommand(userID kernel.ID, bodyUserID kernel.ID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID, bodyUserID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c *CreateOrderCommand) setUserID(userID kernel.ID, bodyUserID kernel.ID) error {
	if err := errors.Join(userID.Validate(), bodyUserID.Validate()); err != nil {
		return err
	}
	if !userID.IsEqual(bodyUserID) {
		return ErrMismatchedUserIDs
	}

	c.userID = userID
	return nil
}
