// Package guard holds the constructor guard used by domain objects and commands
// to tell constructed values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities and commands that must only
// be built through their constructor. The zero value reports itself as not constructed.
//
//	type AddOrderItemCommand struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c AddOrderItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
