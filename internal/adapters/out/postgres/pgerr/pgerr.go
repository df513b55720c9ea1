// Package pgerr classifies PostgreSQL driver errors for the repositories.
// It also registers lib/pq as the database/sql driver behind GORM.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// DriverName is the database/sql driver registered by lib/pq.
const DriverName = "postgres"

const uniqueViolation = "unique_violation"

// IsUniqueViolation reports whether err is a unique violation of the named index.
// An empty name matches any unique index.
func IsUniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code.Name() != uniqueViolation {
		return false
	}
	return name == "" || pqErr.Constraint == name
}
