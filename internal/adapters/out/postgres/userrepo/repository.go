package userrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user and returns it with the assigned id.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, LiveEmailIndex) {
			return nil, user.ErrEmailAlreadyTaken
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

// Update saves the profile and role of an existing user.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"email":      dto.Email,
			"first_name": dto.FirstName,
			"last_name":  dto.LastName,
			"role":       dto.Role,
		})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, LiveEmailIndex) {
			return nil, user.ErrEmailAlreadyTaken
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("user", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Get retrieves a user that is not deleted.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	return r.take(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a user with SELECT ... FOR UPDATE.
func (r *GormUserRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*user.User, error) {
	return r.take(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormUserRepository) take(db *gorm.DB, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := db.Take(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by normalised email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	normalized := user.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).Take(&dto, "email = ?", normalized).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", normalized)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns every user that is not deleted, ordered by id.
func (r *GormUserRepository) List(ctx context.Context) ([]*user.User, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

// SoftDelete stamps deleted_at on the user row.
func (r *GormUserRepository) SoftDelete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.Int64())
	}

	return nil
}

// ListDeletedBefore returns the ids of users soft-deleted before cutoff.
func (r *GormUserRepository) ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]kernel.ID, error) {
	var raw []int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&UserDTO{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("id").
		Pluck("id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.NewID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Purge hard-deletes soft-deleted users. Live users in ids are left alone.
func (r *GormUserRepository) Purge(ctx context.Context, ids []kernel.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return 0, err
		}
		raw = append(raw, id.Int64())
	}

	result := r.db.WithContext(ctx).
		Unscoped().
		Where("id IN ? AND deleted_at IS NOT NULL", raw).
		Delete(&UserDTO{})
	return result.RowsAffected, result.Error
}
