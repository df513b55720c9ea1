package queries

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves the orders of one user, optionally narrowed to a status.
//
// Example:
//
//	query, err := NewListUserOrdersQuery(userID, "active")
//	orders, err := handler.Handle(ctx, query)
type ListUserOrdersQuery struct {
	userID kernel.ID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery parses the raw status filter. An empty filter matches every status.
func NewListUserOrdersQuery(userID kernel.ID, status string) (ListUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListUserOrdersQuery{}, err
	}

	q := ListUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(status) != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return ListUserOrdersQuery{}, err
		}
		q.status = &parsed
	}

	return q, nil
}

func (q ListUserOrdersQuery) UserID() kernel.ID {
	return q.userID
}

// Status returns the filter, or nil when every status matches.
func (q ListUserOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}
