package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

type GetUserQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID kernel.ID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}
