// Package queries contains read-only operations. Handlers read straight from the
// database with raw SQL and never go through the aggregates or a unit of work.
package queries

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// UserView is the public projection of an account. The password hash never leaves the store.
type UserView struct {
	ID        kernel.ID
	Email     string
	FirstName string
	LastName  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderView is an order as seen by its owner. Items is nil in list results.
type OrderView struct {
	ID        kernel.ID
	UserID    kernel.ID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []ItemView
}

type ItemView struct {
	ID        kernel.ID
	OrderID   kernel.ID
	ProductID kernel.ID
	Quantity  int
}

// scanner is satisfied by *sql.Rows and *sql.Row.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (UserView, error) {
	var view UserView
	var id int64

	if err := row.Scan(
		&id,
		&view.Email,
		&view.FirstName,
		&view.LastName,
		&view.Role,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return UserView{}, err
	}

	userID, err := kernel.NewID(id)
	if err != nil {
		return UserView{}, err
	}
	view.ID = userID

	return view, nil
}

func scanOrder(row scanner) (OrderView, error) {
	var view OrderView
	var id, userID int64

	if err := row.Scan(
		&id,
		&userID,
		&view.Status,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return OrderView{}, err
	}

	var err error
	if view.ID, err = kernel.NewID(id); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.NewID(userID); err != nil {
		return OrderView{}, err
	}

	return view, nil
}

func scanItem(row scanner) (ItemView, error) {
	var view ItemView
	var id, orderID, productID int64

	if err := row.Scan(
		&id,
		&orderID,
		&productID,
		&view.Quantity,
	); err != nil {
		return ItemView{}, err
	}

	var err error
	if view.ID, err = kernel.NewID(id); err != nil {
		return ItemView{}, err
	}
	if view.OrderID, err = kernel.NewID(orderID); err != nil {
		return ItemView{}, err
	}
	if view.ProductID, err = kernel.NewID(productID); err != nil {
		return ItemView{}, err
	}

	return view, nil
}
