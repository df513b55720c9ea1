package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetUserOrderQueryIsNotConstructed = errors.New(
	"GetUserOrderQuery must be created via NewGetUserOrderQuery constructor",
)

// GetUserOrderQuery retrieves one order with its items.
type GetUserOrderQuery struct {
	userID  kernel.ID
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserOrderQuery(userID, orderID kernel.ID) (GetUserOrderQuery, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return GetUserOrderQuery{}, err
	}

	return GetUserOrderQuery{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserOrderQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetUserOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

func (q GetUserOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrderQueryIsNotConstructed)
}
