// Package errors is the error toolkit of the domain layer: stdlib matching plus
// github.com/pkg/errors annotations, so domain packages import a single name.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap adds a message and a stack trace. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error carrying a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
