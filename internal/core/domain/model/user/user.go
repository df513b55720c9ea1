package user

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	ErrEmailAlreadyTaken = errs.NewValueIsInvalidError("A user already exists with this email")
)

type User struct {
	id           kernel.ID
	email        string
	firstName    string
	lastName     string
	passwordHash string
	role         Role

	guard guard.ConstructorGuard
}

// NewUser registers an unsaved account with the default role.
func NewUser(email, firstName, lastName, passwordHash string) (*User, error) {
	u := &User{
		role:  RoleUser,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setProfile(email, firstName, lastName),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id kernel.ID, email, firstName, lastName, passwordHash string, role Role) (*User, error) {
	u, err := NewUser(email, firstName, lastName, passwordHash)
	if err != nil {
		return nil, err
	}

	parsed, roleErr := ParseRole(role.String())
	if err = errors.Join(id.Validate(), roleErr); err != nil {
		return nil, err
	}

	u.id = id
	u.role = parsed
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// GrantAdmin gives the user access to every account.
func (u *User) GrantAdmin() {
	u.role = RoleAdmin
}

// UpdateProfile replaces the email and names. The password is not touched.
func (u *User) UpdateProfile(email, firstName, lastName string) error {
	next := *u
	if err := next.setProfile(email, firstName, lastName); err != nil {
		return err
	}

	u.email, u.firstName, u.lastName = next.email, next.firstName, next.lastName
	return nil
}

func (u *User) setProfile(email, firstName, lastName string) error {
	email = NormalizeEmail(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	var problems []error
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	} else if !strings.Contains(email, "@") {
		problems = append(problems, errs.NewValueIsInvalidError("email"))
	}
	if firstName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("firstName"))
	}
	if lastName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("lastName"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	u.email, u.firstName, u.lastName = email, firstName, lastName
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
