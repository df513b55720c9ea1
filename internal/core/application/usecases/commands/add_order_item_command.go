package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to append a product line to an order.
// The quantity and an order id repeated in the body are checked here so that a
// bad request never reaches the store.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.ID
	orderID   kernel.ID
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(
	userID, orderID kernel.ID,
	bodyOrderID *kernel.ID,
	productID kernel.ID,
	quantity int,
) (AddOrderItemCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		orderID.Validate(),
		productID.Validate(),
		order.ValidateQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}
	if err := matchBodyOrderID(orderID, bodyOrderID); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		userID:    userID,
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) UserID() kernel.ID {
	return c.userID
}

func (c AddOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AddOrderItemCommand) ProductID() kernel.ID {
	return c.productID
}

func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}
