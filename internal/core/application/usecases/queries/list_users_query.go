package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves every live account. Admin only at the HTTP boundary.
type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}
