package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrDeleteOrderItemCommandIsNotConstructed = errors.New(
	"DeleteOrderItemCommand must be created via NewDeleteOrderItemCommand constructor",
)

type DeleteOrderItemCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.ID
	orderID kernel.ID
	itemID  kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderItemCommand(userID, orderID, itemID kernel.ID) (DeleteOrderItemCommand, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return DeleteOrderItemCommand{}, err
	}

	return DeleteOrderItemCommand{
		userID:  userID,
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderItemCommandIsNotConstructed)
}

func (c DeleteOrderItemCommand) UserID() kernel.ID {
	return c.userID
}

func (c DeleteOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c DeleteOrderItemCommand) ItemID() kernel.ID {
	return c.itemID
}
