package core

import (
	"fmt"
	"strings"
)

// CommandError is an error used to signal different error situations in command handling.
type CommandError struct {
	s         string
	userError bool
	cause     error
}

func (c CommandError) Error() string {
	return c.s
}

// Unwrap returns the error that caused this one, if any
func (c CommandError) Unwrap() error {
	return c.cause
}

// IsUserError returns true if the error was caused by bad input rather than the system
func (c CommandError) IsUserError() bool {
	return c.userError
}

// NewUserError creates a new user input related error
func NewUserError(a ...interface{}) CommandError {
	return CommandError{s: strings.TrimSuffix(fmt.Sprintln(a...), "\n"), userError: true, cause: firstError(a)}
}

// NewUserErrorF creates a new user input related error with formatting
func NewUserErrorF(format string, a ...interface{}) CommandError {
	err := fmt.Errorf(format, a...)
	return CommandError{s: err.Error(), userError: true, cause: unwrapped(err)}
}

// NewSystemError creates a new system related error
func NewSystemError(a ...interface{}) CommandError {
	return CommandError{s: strings.TrimSuffix(fmt.Sprintln(a...), "\n"), userError: false, cause: firstError(a)}
}

// NewSystemErrorF creates a new system related error with formatting
func NewSystemErrorF(format string, a ...interface{}) CommandError {
	err := fmt.Errorf(format, a...)
	return CommandError{s: err.Error(), userError: false, cause: unwrapped(err)}
}

// PreconditionError signals input the caller promised would never arrive, such as a type
// the classifier cannot resolve. It is raised with panic and is never retried.
type PreconditionError struct {
	s string
}

func (p PreconditionError) Error() string {
	return "precondition violated: " + p.s
}

// NewPreconditionError creates a PreconditionError with formatting
func NewPreconditionError(format string, a ...interface{}) PreconditionError {
	return PreconditionError{s: fmt.Sprintf(format, a...)}
}

// Recovered turns a value obtained from recover into an error
func Recovered(r interface{}) error {
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return fmt.Errorf("%v", v)
	}
}

func firstError(a []interface{}) error {
	for _, v := range a {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

func unwrapped(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
