package errors

import (
	"errors"
	"fmt"
)

// Exit codes for conswap
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitGroupNotFound     = 2
	ExitConfigNotFound    = 3
	ExitAlreadyExists     = 4
	ExitCorruptDescriptor = 5
	ExitSourceUnavailable = 6
	ExitInvalidField      = 7
	ExitWriteFailed       = 8
)

// Error is the base error type for conswap
type Error struct {
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *Error) ExitCode() int {
	return e.Code
}

// New creates a new Error
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(code int, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// GroupNotFound returns an error for a missing group
func GroupNotFound(name string) *Error {
	return New(ExitGroupNotFound, fmt.Sprintf("group not found: %s", name))
}

// ConfigNotFound returns an error for a config absent from a group's store
func ConfigNotFound(group, config string) *Error {
	return New(ExitConfigNotFound, fmt.Sprintf("config %s not found in group %s", config, group))
}

// TrashNotFound returns an error for a config absent from a group's trash
func TrashNotFound(group, config string) *Error {
	return New(ExitConfigNotFound, fmt.Sprintf("config %s not found in trash of group %s", config, group))
}

// AlreadyExists returns an error for a name collision
func AlreadyExists(kind, name string) *Error {
	return New(ExitAlreadyExists, fmt.Sprintf("%s already exists: %s", kind, name))
}

// CorruptDescriptor returns an error for an unreadable or malformed descriptor.
// Recoverable via the fix command.
func CorruptDescriptor(group string, cause error) *Error {
	return Wrap(ExitCorruptDescriptor, fmt.Sprintf("corrupt descriptor for group %s", group), cause)
}

// SourceUnavailable returns an error for a missing or unreachable install source
func SourceUnavailable(location string, cause error) *Error {
	return Wrap(ExitSourceUnavailable, fmt.Sprintf("install source unavailable: %s", location), cause)
}

// InvalidField returns an error for an unknown configure target
func InvalidField(field string) *Error {
	return New(ExitInvalidField, fmt.Sprintf("invalid descriptor field: %s", field))
}

// WriteFailed returns an error for a filesystem write or rename failure
func WriteFailed(op string, cause error) *Error {
	return Wrap(ExitWriteFailed, fmt.Sprintf("%s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *Error {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.ExitCode()
	}
	return ExitGeneralError
}

// HasCode reports whether err carries the given exit code
func HasCode(err error, code int) bool {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Code == code
	}
	return false
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
