package postgres

import (
	"fmt"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/pgerr"
	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/adapters/out/postgres/userrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a lib/pq connection string.
func DSN(host, port, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

// Open connects GORM through the lib/pq driver so that repositories can
// inspect *pq.Error values.
func Open(dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: pgerr.DriverName,
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}
