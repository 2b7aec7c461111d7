package util

import (
	"errors"
	"fmt"
)

// Error codes used across the application.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeValidation     = "VALIDATION_FAILED"
	CodeStorageFailure = "STORAGE_FAILURE"
	CodeNotImplemented = "NOT_IMPLEMENTED"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message)
}

func NewValidationError(message string) error {
	return NewDomainError(CodeValidation, message)
}

// NewStorageFailure wraps a storage gateway error. The cause travels to
// the operator log; callers present only the generic message.
func NewStorageFailure(err error) error {
	return &DomainError{Code: CodeStorageFailure, Message: "storage operation failed", Err: err}
}

func NewNotImplemented(capability string) error {
	return NewDomainError(CodeNotImplemented, fmt.Sprintf("%s is not available yet", capability))
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool       { return HasCode(err, CodeNotFound) }
func IsUnauthorized(err error) bool   { return HasCode(err, CodeUnauthorized) }
func IsValidation(err error) bool     { return HasCode(err, CodeValidation) }
func IsStorageFailure(err error) bool { return HasCode(err, CodeStorageFailure) }
func IsNotImplemented(err error) bool { return HasCode(err, CodeNotImplemented) }
