// Package tokens signs and verifies HS256 bearer tokens carrying the user id and role.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptySecret = errors.New("token secret must not be empty")

// Claims is the payload of an access token. Subject holds the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager implements ports.TokenIssuer and verifies the tokens it issued.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("ttl", ttl, time.Second, "unbounded")
	}

	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

func (m *Manager) Issue(userID kernel.ID, role user.Role) (string, error) {
	if err := userID.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the identity the token carries.
// Every failure is an errs.NotAuthenticatedError.
func (m *Manager) Verify(raw string) (kernel.ID, user.Role, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return kernel.ID{}, "", errs.NewNotAuthenticatedError("Invalid or expired token")
	}

	id, err := kernel.ParseID(claims.Subject)
	if err != nil {
		return kernel.ID{}, "", errs.NewNotAuthenticatedError("Invalid token subject")
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return kernel.ID{}, "", errs.NewNotAuthenticatedError("Invalid token role")
	}

	return id, role, nil
}
