package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// liveOwner hides orders whose owner is soft-deleted.
const liveOwner = "JOIN users ON users.id = orders.user_id AND users.deleted_at IS NULL"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) visible(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("orders.*").
		Joins(liveOwner)
}

// GetForUserForUpdate retrieves an order only when userID owns it and locks its
// row until the surrounding transaction ends, so status checks and the writes
// that depend on them are serialised per order.
func (r *GormOrderRepository) GetForUserForUpdate(ctx context.Context, userID kernel.ID, orderID kernel.ID) (*order.Order, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.visible(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}}).
		Where("orders.id = ? AND orders.user_id = ?", orderID.Int64(), userID.Int64()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", orderID.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new order and returns it with the assigned id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, ActiveOrderIndex) {
			return nil, order.ErrActiveOrderAlreadyExists
		}
		return nil, err
	}

	stored, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

// Update saves the status of an existing order. The owner is part of the match.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
		Update("status", dto.Status)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, ActiveOrderIndex) {
			return nil, order.ErrActiveOrderAlreadyExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// HasActive checks the rows covered by the active order index, deleted owners included.
func (r *GormOrderRepository) HasActive(ctx context.Context, userID kernel.ID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("user_id = ? AND status = ?", userID.Int64(), order.Active.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetItem retrieves an order line by ID.
func (r *GormOrderRepository) GetItem(ctx context.Context, itemID kernel.ID) (*order.Item, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderItemDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", itemID.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", itemID.Int64())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// AddItem saves a new order line and returns it with the assigned id.
func (r *GormOrderRepository) AddItem(ctx context.Context, item *order.Item) (*order.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	stored, err := itemToDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(stored.ID(), stored)
	return stored, nil
}

// UpdateItem saves the quantity of an existing line.
func (r *GormOrderRepository) UpdateItem(ctx context.Context, item *order.Item) (*order.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := item.ID().Validate(); err != nil {
		return nil, err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Where("id = ? AND order_id = ?", dto.ID, dto.OrderID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order item", dto.ID)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return item, nil
}

// DeleteItem removes an existing line.
func (r *GormOrderRepository) DeleteItem(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", item.ID().Int64(), item.OrderID().Int64()).
		Delete(&OrderItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", item.ID().Int64())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// PurgeForUsers hard-deletes the orders of userIDs and their items.
func (r *GormOrderRepository) PurgeForUsers(ctx context.Context, userIDs []kernel.ID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Int64())
	}

	db := r.db.WithContext(ctx)
	owned := db.Model(&OrderDTO{}).Select("id").Where("user_id IN ?", raw)
	if err := db.Where("order_id IN (?)", owned).Delete(&OrderItemDTO{}).Error; err != nil {
		return 0, err
	}

	result := db.Where("user_id IN ?", raw).Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
