package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand asks for the status change of an order. Only a change to
// complete is legal; that decision is left to the order so that a completed
// order reports itself as completed whatever status was requested.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.ID
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand checks the body identifiers against the path.
func NewCompleteOrderCommand(
	userID, orderID kernel.ID,
	bodyUserID, bodyOrderID kernel.ID,
	status order.Status,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userID.Validate(),
		orderID.Validate(),
		bodyUserID.Validate(),
		bodyOrderID.Validate(),
		status.Validate(),
	); err != nil {
		return CompleteOrderCommand{}, err
	}
	if !userID.IsEqual(bodyUserID) {
		return CompleteOrderCommand{}, ErrMismatchedUserIDs
	}
	if !orderID.IsEqual(bodyOrderID) {
		return CompleteOrderCommand{}, ErrMismatchedOrderIDs
	}

	cmd.userID = userID
	cmd.orderID = orderID
	cmd.status = status
	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) UserID() kernel.ID {
	return c.userID
}

func (c CompleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Status is the requested target status.
func (c CompleteOrderCommand) Status() order.Status {
	return c.status
}
