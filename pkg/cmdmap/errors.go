package cmdmap

import (
	"errors"
	"fmt"
)

// Error codes reported by the mapper.
const (
	// ErrCodeNoCommands indicates Run or Resolve found an empty registry.
	ErrCodeNoCommands = "CMDMAP_NO_COMMANDS"

	// ErrCodeInvalidCommand indicates a command failed registration checks.
	ErrCodeInvalidCommand = "CMDMAP_INVALID_COMMAND"

	// ErrCodeRegistrationClosed indicates Register was called after Run.
	ErrCodeRegistrationClosed = "CMDMAP_REGISTRATION_CLOSED"
)

// Error is a mapper configuration or resolution error.
type Error struct {
	// Code is one of the CMDMAP_* error codes.
	Code string

	// Message is a human-readable description.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Sentinel errors for use with errors.Is.
var (
	ErrNoCommandsRegistered = &Error{Code: ErrCodeNoCommands, Message: "no commands registered"}
	ErrInvalidCommand       = &Error{Code: ErrCodeInvalidCommand, Message: "invalid command"}
	ErrRegistrationClosed   = &Error{Code: ErrCodeRegistrationClosed, Message: "registration closed"}
)

// ErrArityMismatch matches every *ArityError.
var ErrArityMismatch = errors.New("arity mismatch")

// ArityError reports arguments that do not fit a command's signature.
type ArityError struct {
	// Command is the name of the command whose signature was violated.
	Command string

	// Reason describes the violation.
	Reason string
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Command, ErrArityMismatch, e.Reason)
}

// Is reports whether target is ErrArityMismatch.
func (e *ArityError) Is(target error) bool {
	return target == ErrArityMismatch
}
