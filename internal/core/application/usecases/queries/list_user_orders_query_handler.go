package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListUserOrdersQueryHandler reads the orders of one user ordered by id.
// Orders of a soft-deleted user are not returned; an unknown user yields an empty list.
type ListUserOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListUserOrdersQueryHandler(db *gorm.DB) ListUserOrdersQueryHandler {
	return ListUserOrdersQueryHandler{db: db}
}

func (h ListUserOrdersQueryHandler) Handle(ctx context.Context, query ListUserOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			orders.id,
			orders.user_id,
			orders.status,
			orders.created_at,
			orders.updated_at
		FROM orders
		JOIN users ON users.id = orders.user_id AND users.deleted_at IS NULL
		WHERE orders.user_id = ?`
	args := []any{query.UserID().Int64()}

	if status := query.Status(); status != nil {
		stmt += ` AND orders.status = ?`
		args = append(args, status.String())
	}
	stmt += ` ORDER BY orders.id`

	orders := make([]OrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
