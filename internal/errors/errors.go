// Package errors is the single import for error helpers in the persistence
// and domain layers. Sentinel checks go through the stdlib, while wrapping
// records a stack with pkg/errors so failures logged by the HTTP error
// handler point at the call site.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel error without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap annotates err with message and a stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Errorf builds a new error carrying a stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
