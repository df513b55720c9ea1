package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyCompleted is returned for any mutation of a completed order.
	ErrOrderAlreadyCompleted = errs.NewRuleIsViolatedError("Updating an order that is not active is not allowed")

	// ErrInvalidStatusForOperation is returned when an update requests any status other than Complete.
	ErrInvalidStatusForOperation = errs.NewValueIsInvalidError("Invalid status for this operation")
)

// Status is the lifecycle state of an order.
//
//	Active ──> Complete
//
// Complete is terminal. Unknown (the zero value) is never persisted.
type Status int

const (
	Unknown Status = iota
	Active
	Complete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Active:   "active",
		Complete: "complete",
	}
}

// ParseStatus maps the wire and storage representation back to a Status.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return Active, nil
	case "complete":
		return Complete, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", raw))
	}
}

// Validate accepts Active and Complete only.
func (s Status) Validate() error {
	if s != Active && s != Complete {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Complete
}

// Complete transitions Active to Complete.
func (s Status) Complete() (Status, error) {
	switch s {
	case Active:
		return Complete, nil
	case Complete:
		return Unknown, ErrOrderAlreadyCompleted
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
}

// ValidateAddItem allows item creation only when the status is exactly Active.
func (s Status) ValidateAddItem() error {
	if s != Active {
		return ErrOrderAlreadyCompleted
	}
	return nil
}

// ValidateChangeItems allows item updates and removals whenever the order is not Complete.
// It is phrased independently of ValidateAddItem so that intermediate states added later
// keep their items editable.
func (s Status) ValidateChangeItems() error {
	if s == Complete {
		return ErrOrderAlreadyCompleted
	}
	return nil
}
