// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: constructor validation, transaction
// management, lifecycle decision and persistence.
package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Identity checks between path parameters and request bodies.
var (
	ErrMismatchedUserIDs      = errs.NewValueIsInvalidError("Mismatched user ids")
	ErrMismatchedOrderIDs     = errs.NewValueIsInvalidError("Mismatched order ids")
	ErrMismatchedOrderItemIDs = errs.NewValueIsInvalidError("Mismatched order item ids")
)

// matchBodyOrderID checks an order id repeated in a request body. Bodies may omit it.
func matchBodyOrderID(orderID kernel.ID, bodyOrderID *kernel.ID) error {
	if bodyOrderID == nil {
		return nil
	}
	if err := bodyOrderID.Validate(); err != nil {
		return err
	}
	if !orderID.IsEqual(*bodyOrderID) {
		return ErrMismatchedOrderIDs
	}
	return nil
}

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for operations on a single existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans users, orders and the product catalog.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   owner, err := uow.UserRepository().GetForUpdate(ctx, userID)
	//   created, err := uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		OrderRepoFactory
		ProductRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
