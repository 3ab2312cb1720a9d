// Package errors provides domain-specific error types for disk2iso-web.
//
// This package defines structured errors with error codes, so that the
// backend adapter, the restart trigger and the HTTP layer can agree on the
// failure category without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeInvalidKey indicates a config key that is not in the registry.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"

	// ErrCodeBackend indicates that the external config store reported a failure
	// (non-zero exit status, missing key in the conf file).
	ErrCodeBackend ErrorCode = "BACKEND_ERROR"

	// ErrCodeTimeout indicates that an external call exceeded its time bound.
	ErrCodeTimeout ErrorCode = "TIMEOUT"

	// ErrCodeRestart indicates that a service restart request was not accepted.
	ErrCodeRestart ErrorCode = "RESTART_ERROR"

	// ErrCodeConfig indicates a service configuration error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeInternal indicates an unexpected internal error (process spawn
	// failure, I/O error).
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain.
// Errors that carry no code are reported as ErrCodeInternal; nil yields "".
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// NewInvalidKeyError creates a new unknown config key error.
func NewInvalidKeyError(key string) *Error {
	return New(ErrCodeInvalidKey, "Unknown config key: "+key)
}

// NewBackendError creates a new config store failure error.
func NewBackendError(message string, cause error) *Error {
	return Wrap(ErrCodeBackend, message, cause)
}

// NewTimeoutError creates a new timeout error.
func NewTimeoutError(message string, cause error) *Error {
	return Wrap(ErrCodeTimeout, message, cause)
}

// NewRestartError creates a new service restart error.
func NewRestartError(message string, cause error) *Error {
	return Wrap(ErrCodeRestart, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
