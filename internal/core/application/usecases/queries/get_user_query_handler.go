package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserQueryHandler reads one live user. Soft-deleted users are not found.
type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			first_name,
			last_name,
			role,
			created_at,
			updated_at
		FROM users
		WHERE id = ? AND deleted_at IS NULL
	`, query.UserID().Int64()).Row()

	view, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().Int64())
	}
	if err != nil {
		return UserView{}, err
	}

	return view, nil
}
