package http

import (
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

var (
	ErrMissingToken = errs.NewNotAuthenticatedError("Missing bearer token")
	ErrAccessDenied = errs.NewRuleIsViolatedError("You are not allowed to access this resource")
)

// Actor is the authenticated caller.
type Actor struct {
	UserID kernel.ID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// TokenVerifier turns a bearer token into the identity it carries.
type TokenVerifier interface {
	Verify(raw string) (kernel.ID, user.Role, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the Actor on the context.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return ErrMissingToken
			}

			id, role, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				return err
			}

			c.Set(actorKey, Actor{UserID: id, Role: role})
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorKey).(Actor)
	if !ok {
		return Actor{}, ErrMissingToken
	}
	return actor, nil
}

// Gate decides whether an actor may touch resources owned by a user.
type Gate struct{}

// Approve allows the owner and administrators.
func (Gate) Approve(actor Actor, ownerID kernel.ID) error {
	if actor.IsAdmin() || actor.UserID.IsEqual(ownerID) {
		return nil
	}
	return ErrAccessDenied
}

func (Gate) RequireAdmin(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrAccessDenied
}
