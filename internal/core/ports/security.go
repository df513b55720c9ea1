package ports

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID kernel.ID, role user.Role) (string, error)
}
