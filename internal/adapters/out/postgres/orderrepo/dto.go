// Package orderrepo persists order aggregates and their items with GORM.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ActiveOrderIndex is the partial unique index allowing one active order per user.
const ActiveOrderIndex = "idx_orders_user_active"

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index;uniqueIndex:idx_orders_user_active,where:status = 'active'"`
	Status    string `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line.
type OrderItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null;check:chk_order_items_quantity,quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		UserID: aggregate.UserID().Int64(),
		Status: aggregate.Status().String(),
	}
	if !aggregate.ID().IsZero() {
		dto.ID = aggregate.ID().Int64()
	}
	return dto
}

// toDomain reconstructs the aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, status)
}

func itemFromDomain(item *order.Item) OrderItemDTO {
	dto := OrderItemDTO{
		OrderID:   item.OrderID().Int64(),
		ProductID: item.ProductID().Int64(),
		Quantity:  item.Quantity(),
	}
	if !item.ID().IsZero() {
		dto.ID = item.ID().Int64()
	}
	return dto
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, dto.Quantity)
}
