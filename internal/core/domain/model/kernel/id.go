package kernel

import (
	"math"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is the store-assigned identifier of users, orders, order items and products.
// Valid identifiers are positive integers; the zero value is invalid.
type ID struct {
	value int64
	guard guard.ConstructorGuard
}

// NewID wraps a positive integer as an ID.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, int64(math.MaxInt64))
	}
	return ID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// ParseID parses a raw token (path segment, query value) as a base-10 positive integer.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Validate reports whether the ID was built through NewID or ParseID.
func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

// IsZero reports whether the ID is unassigned.
func (id ID) IsZero() bool {
	return id.value == 0
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) Int64() int64 {
	return id.value
}

func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}
