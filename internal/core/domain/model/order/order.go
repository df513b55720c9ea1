package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrActiveOrderAlreadyExists is returned when a user with an active order asks for another one.
	ErrActiveOrderAlreadyExists = errs.NewRuleIsViolatedError(
		"Could not create the order: an active order already exists",
	)
)

// Order is the aggregate root of a user's purchase. It carries no items itself:
// items are separate entities that reference the order by id, and the item
// rules that depend on the order status live in services.OrderLifecycle.
type Order struct {
	// id is zero until the store assigns one
	id     kernel.ID
	userID kernel.ID
	status Status

	guard guard.ConstructorGuard
}

// NewOrder starts an Active order for userID. The order has no id until it is persisted.
func NewOrder(userID kernel.ID) (*Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		userID: userID,
		status: Active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(id kernel.ID, userID kernel.ID, status Status) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:     id,
		userID: userID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) UserID() kernel.ID {
	return o.userID
}

func (o *Order) Status() Status {
	return o.status
}

// IsOwnedBy reports whether userID owns the order.
func (o *Order) IsOwnedBy(userID kernel.ID) bool {
	return o.userID.IsEqual(userID)
}

// Complete applies an explicit status update request.
//
// A completed order rejects every request with ErrOrderAlreadyCompleted; this
// is checked before the requested value so that resubmitting "complete" on a
// completed order is a conflict, not a validation error. Any requested status
// other than Complete is rejected with ErrInvalidStatusForOperation.
func (o *Order) Complete(requested Status) error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyCompleted
	}
	if requested != Complete {
		return ErrInvalidStatusForOperation
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
