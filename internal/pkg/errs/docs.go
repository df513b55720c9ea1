// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters of the ordering service.
//
// Every type wraps a sentinel so callers branch with errors.Is, and keeps its
// details in exported fields for errors.As:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is malformed, or two ids that must agree do not
//   - ValueIsOutOfRangeError: a value lies outside its bounds
//   - ObjectNotFoundError: the object is absent or belongs to someone else
//   - RuleIsViolatedError: a well-formed request breaks a business rule
//   - NotAuthenticatedError: the caller could not be identified
//
// Constructors come in pairs, with and without a cause. KindOf reduces any error
// chain to the kind reported at the API boundary.
package errs
