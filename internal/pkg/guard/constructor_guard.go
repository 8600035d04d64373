// Package guard provides the constructor-guard pattern used by commands,
// queries, and value objects to detect zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard in a struct makes zero-value instances
// distinguishable from constructed ones: the zero-value guard fails
// Validate, a guard obtained from NewConstructorGuard passes.
//
// Example:
//
//	type SignUpCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSignUpCommand(name string) (SignUpCommand, error) {
//	    if name == "" {
//	        return SignUpCommand{}, ErrNameIsRequired
//	    }
//	    return SignUpCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SignUpCommand) Validate() error {
//	    return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
