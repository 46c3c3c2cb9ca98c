// Package guard detects value objects and commands that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not meaningful.
// Only NewConstructorGuard produces a guard that validates, so a struct literal
// built outside its package fails Validate.
//
// Example:
//
//	type SetSettingCommand struct {
//	    key   setting.Key
//	    guard guard.ConstructorGuard
//	}
//
//	func (c SetSettingCommand) Validate() error {
//	    return c.guard.Validate(ErrSetSettingCommandIsNotConstructed)
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
