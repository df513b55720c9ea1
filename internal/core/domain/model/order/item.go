package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrProductMismatch is returned when an item update names a product other than the stored one.
	ErrProductMismatch = errs.NewValueIsInvalidError("Mismatched product ids")
)

// Item is one order line. Its order and product never change; only the quantity does.
type Item struct {
	id        kernel.ID
	orderID   kernel.ID
	productID kernel.ID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem builds an unsaved line for orderID.
func NewItem(orderID kernel.ID, productID kernel.ID, quantity int) (*Item, error) {
	if err := errors.Join(
		orderID.Validate(),
		productID.Validate(),
		ValidateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return &Item{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rebuilds a persisted line.
func RestoreItem(id, orderID, productID kernel.ID, quantity int) (*Item, error) {
	item, err := NewItem(orderID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// ValidateQuantity accepts positive quantities.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) OrderID() kernel.ID {
	return i.orderID
}

func (i *Item) ProductID() kernel.ID {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// BelongsTo reports whether the item is a line of o.
func (i *Item) BelongsTo(o *Order) bool {
	return o != nil && i.orderID.IsEqual(o.ID())
}

// Revise replaces the quantity. productID must equal the stored product.
func (i *Item) Revise(productID kernel.ID, quantity int) error {
	if !i.productID.IsEqual(productID) {
		return ErrProductMismatch
	}
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	i.quantity = quantity
	return nil
}
