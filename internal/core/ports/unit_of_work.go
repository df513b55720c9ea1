package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction together with the repositories bound to it.
// Callers Begin, defer Rollback and Commit on success. Rollback after Commit
// reports an error that deferred calls ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	UserRepository() UserRepository
	ProductRepository() ProductRepository
}
