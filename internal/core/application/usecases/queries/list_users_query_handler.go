package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUsersQueryHandler reads live users ordered by id.
type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]UserView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			first_name,
			last_name,
			role,
			created_at,
			updated_at
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
