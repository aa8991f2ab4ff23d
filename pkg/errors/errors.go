// Package errors provides structured errors with stable codes for the
// configuration and terminal surfaces. The drawer itself propagates no
// errors; every failure there degrades to "no status lines are shown".
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// StatlineError represents a structured error with code and details
type StatlineError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface
func (e *StatlineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StatlineError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StatlineError) Is(target error) bool {
	var targetErr *StatlineError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StatlineError with the given code and message
func New(code ErrorCode, message string) *StatlineError {
	return &StatlineError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new StatlineError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StatlineError {
	return &StatlineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a StatlineError
func Wrap(err error, code ErrorCode, message string) *StatlineError {
	if err == nil {
		return nil
	}
	return &StatlineError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StatlineError {
	if err == nil {
		return nil
	}
	return &StatlineError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var statErr *StatlineError
	if errors.As(err, &statErr) {
		return statErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a StatlineError
func GetErrorCode(err error) ErrorCode {
	var statErr *StatlineError
	if errors.As(err, &statErr) {
		return statErr.Code
	}
	return ErrUnknown
}
