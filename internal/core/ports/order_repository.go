// Package ports defines the persistence and security contracts of the ordering core.
// Adapters under internal/adapters implement them; use cases depend only on these interfaces.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and their items.
//
// Orders of soft-deleted users are invisible to every read method. Listings and
// order details are served by the query handlers.
type OrderRepository interface {
	// GetForUserForUpdate returns the order with orderID owned by userID and locks it
	// for the rest of the transaction. A missing order and an order owned by someone
	// else are both reported as errs.ObjectNotFoundError.
	GetForUserForUpdate(ctx context.Context, userID kernel.ID, orderID kernel.ID) (*order.Order, error)

	// Add inserts a new order and returns it with its assigned id.
	// A second active order for the same user fails with order.ErrActiveOrderAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the status of an existing order, re-checking its owner.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// HasActive reports whether userID currently owns an active order.
	HasActive(ctx context.Context, userID kernel.ID) (bool, error)

	GetItem(ctx context.Context, itemID kernel.ID) (*order.Item, error)
	AddItem(ctx context.Context, item *order.Item) (*order.Item, error)
	UpdateItem(ctx context.Context, item *order.Item) (*order.Item, error)
	DeleteItem(ctx context.Context, item *order.Item) error

	// PurgeForUsers hard-deletes every order of the given users together with their items.
	// It returns the number of removed orders.
	PurgeForUsers(ctx context.Context, userIDs []kernel.ID) (int64, error)
}
