package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Deleted users are soft-deleted and hidden from every method except ListDeletedBefore.
type UserRepository interface {
	// Add inserts a new user. A taken email fails with user.ErrEmailAlreadyTaken.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	// Update persists profile changes. A taken email fails with user.ErrEmailAlreadyTaken.
	Update(ctx context.Context, aggregate *user.User) (*user.User, error)

	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetForUpdate loads the user and holds a row lock until the transaction ends.
	// Callers use it to serialise writes that depend on the user's other aggregates.
	GetForUpdate(ctx context.Context, id kernel.ID) (*user.User, error)

	GetByEmail(ctx context.Context, email string) (*user.User, error)

	List(ctx context.Context) ([]*user.User, error)

	SoftDelete(ctx context.Context, id kernel.ID) error

	// ListDeletedBefore returns the ids of users soft-deleted before cutoff.
	ListDeletedBefore(ctx context.Context, cutoff time.Time) ([]kernel.ID, error)

	// Purge hard-deletes the given soft-deleted users and returns how many rows went away.
	Purge(ctx context.Context, ids []kernel.ID) (int64, error)
}
