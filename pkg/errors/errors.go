// Package errors provides structured error types for slotgrid.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP server and the library
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Placement errors raised by the grid carry one of four codes:
//   - INVALID_FORMAT: a "row,column" constraint string could not be parsed
//   - ILLEGAL_POSITION: the position is outside the grid or reserved
//   - SLOT_OCCUPIED: another component already sits at the position
//   - DUPLICATE_COMPONENT: the component was already placed elsewhere
//
// The remaining codes describe configuration and request problems.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeIllegalPosition, "position %s is not supported", pos)
//	if errors.Is(err, errors.ErrCodeIllegalPosition) {
//	    // Handle placement error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Placement errors
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeIllegalPosition    Code = "ILLEGAL_POSITION"
	ErrCodeSlotOccupied       Code = "SLOT_OCCUPIED"
	ErrCodeDuplicateComponent Code = "DUPLICATE_COMPONENT"

	// Input validation errors
	ErrCodeInvalidGap    Code = "INVALID_GAP"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidSize   Code = "INVALID_SIZE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsPlacement reports whether err is one of the four errors raised when a
// component is added to a grid.
func IsPlacement(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidFormat, ErrCodeIllegalPosition, ErrCodeSlotOccupied, ErrCodeDuplicateComponent:
		return true
	}
	return false
}
