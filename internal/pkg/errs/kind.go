package errs

import "errors"

// Kind is the machine distinguishable error class exposed at the API boundary.
type Kind string

const (
	KindBadRequest   Kind = "bad-request"
	KindNotFound     Kind = "not-found"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

// KindOf classifies err by the sentinel found in its chain.
// Errors carrying none of the package sentinels are internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindBadRequest
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrRuleIsViolated):
		return KindForbidden
	case errors.Is(err, ErrNotAuthenticated):
		return KindUnauthorized
	default:
		return KindInternal
	}
}
