// Package pgtest starts disposable PostgreSQL containers for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"time"

	adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated schema inside a running container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates every table.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	db, err := adapter.Open(dsn, logger.Silent)
	if err != nil {
		return nil, err
	}
	if err = adapter.Migrate(db); err != nil {
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

// Truncate empties every table and restarts the id sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE order_items, orders, products, users RESTART IDENTITY").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// SeedUser inserts a live user row and returns its id.
func (d *Database) SeedUser(email string) (int64, error) {
	dto := userrepo.UserDTO{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "hash",
		Role:         "user",
	}
	if err := d.DB.Create(&dto).Error; err != nil {
		return 0, fmt.Errorf("seed user: %w", err)
	}
	return dto.ID, nil
}

// SeedProduct inserts a catalog row and returns its id.
func (d *Database) SeedProduct(name string, price string) (int64, error) {
	dto := productrepo.ProductDTO{
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	if err := d.DB.Create(&dto).Error; err != nil {
		return 0, fmt.Errorf("seed product: %w", err)
	}
	return dto.ID, nil
}
