package services

import (
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// OrderLifecycle gates item mutations on the owning order's status.
//
// Business rules:
//   - Items are added only when the order is exactly Active
//   - Items are revised or removed only when the order is not Complete
//   - An item outside the order behaves as a missing item
//   - Revisions keep the stored product
//
// OrderLifecycle is stateless; the product catalog is consulted by the caller and
// passed in, so tests can supply deterministic products.
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// CanAddItem reports whether o currently accepts new items.
func (OrderLifecycle) CanAddItem(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Status().ValidateAddItem()
}

// CanChangeItems reports whether o currently accepts item revisions and removals.
func (OrderLifecycle) CanChangeItems(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.Status().ValidateChangeItems()
}

// AddItem builds a new line of p on o.
func (l OrderLifecycle) AddItem(o *order.Order, p *product.Product, quantity int) (*order.Item, error) {
	if err := l.CanAddItem(o); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if o.ID().IsZero() {
		return nil, errs.NewValueIsRequiredError("order id")
	}

	return order.NewItem(o.ID(), p.ID(), quantity)
}

// ReviseItem changes the quantity of item on o. p is the product named by the request;
// it must exist and be the item's stored product. A nil p means the catalog has no such product.
func (l OrderLifecycle) ReviseItem(o *order.Order, item *order.Item, p *product.Product, quantity int) error {
	if err := l.CanChangeItems(o); err != nil {
		return err
	}
	if err := l.ensureLine(o, item); err != nil {
		return err
	}
	if p.Validate() != nil {
		return order.ErrProductMismatch
	}

	return item.Revise(p.ID(), quantity)
}

// RemoveItem checks that item may be deleted from o.
func (l OrderLifecycle) RemoveItem(o *order.Order, item *order.Item) error {
	if err := l.CanChangeItems(o); err != nil {
		return err
	}
	return l.ensureLine(o, item)
}

func (OrderLifecycle) ensureLine(o *order.Order, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if !item.BelongsTo(o) {
		return errs.NewObjectNotFoundError("order item", item.ID())
	}
	return nil
}
