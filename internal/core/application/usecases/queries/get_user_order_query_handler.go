package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrderQueryHandler reads an order and its items.
//
// An order owned by someone else is reported exactly like a missing one.
type GetUserOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetUserOrderQueryHandler(db *gorm.DB) GetUserOrderQueryHandler {
	return GetUserOrderQueryHandler{db: db}
}

func (h GetUserOrderQueryHandler) Handle(ctx context.Context, query GetUserOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)

	row := db.Raw(`
		SELECT
			orders.id,
			orders.user_id,
			orders.status,
			orders.created_at,
			orders.updated_at
		FROM orders
		JOIN users ON users.id = orders.user_id AND users.deleted_at IS NULL
		WHERE orders.id = ? AND orders.user_id = ?
	`, query.OrderID().Int64(), query.UserID().Int64()).Row()

	view, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().Int64())
	}
	if err != nil {
		return OrderView{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, view.ID.Int64()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	view.Items = make([]ItemView, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return OrderView{}, scanErr
		}
		view.Items = append(view.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
