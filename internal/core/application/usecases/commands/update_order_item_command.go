package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand changes the quantity of an existing line. The body
// repeats the item id, the product id and optionally the order id; the product
// cannot be swapped.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.ID
	orderID   kernel.ID
	itemID    kernel.ID
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemCommand(
	userID, orderID, itemID kernel.ID,
	bodyOrderID *kernel.ID,
	bodyItemID, productID kernel.ID,
	quantity int,
) (UpdateOrderItemCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		orderID.Validate(),
		itemID.Validate(),
		bodyItemID.Validate(),
		productID.Validate(),
		order.ValidateQuantity(quantity),
	); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	if err := matchBodyOrderID(orderID, bodyOrderID); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	if !itemID.IsEqual(bodyItemID) {
		return UpdateOrderItemCommand{}, ErrMismatchedOrderItemIDs
	}

	return UpdateOrderItemCommand{
		userID:    userID,
		orderID:   orderID,
		itemID:    itemID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

func (c UpdateOrderItemCommand) UserID() kernel.ID {
	return c.userID
}

func (c UpdateOrderItemCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderItemCommand) ItemID() kernel.ID {
	return c.itemID
}

func (c UpdateOrderItemCommand) ProductID() kernel.ID {
	return c.productID
}

func (c UpdateOrderItemCommand) Quantity() int {
	return c.quantity
}
