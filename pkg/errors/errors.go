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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors (fatal, abort the run)
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"
	ErrManifestRead     ErrorCode = "MANIFEST_READ"
	ErrManifestParse    ErrorCode = "MANIFEST_PARSE"
	ErrTargetNotFound   ErrorCode = "TARGET_NOT_FOUND"
	ErrDestUnresolved   ErrorCode = "DEST_UNRESOLVED"
	ErrLocationUnknown  ErrorCode = "LOCATION_UNKNOWN"
	ErrUnknownOpt       ErrorCode = "UNKNOWN_OPT"

	// Record errors
	ErrRecordRead  ErrorCode = "RECORD_READ"
	ErrRecordWrite ErrorCode = "RECORD_WRITE"

	// Filesystem errors (recoverable during execution)
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
)

// CharonError represents a structured error with code and details
type CharonError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CharonError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CharonError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CharonError with the same code
func (e *CharonError) Is(target error) bool {
	var targetErr *CharonError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CharonError with the given code and message
func New(code ErrorCode, message string) *CharonError {
	return &CharonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CharonError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CharonError {
	return &CharonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CharonError
func Wrap(err error, code ErrorCode, message string) *CharonError {
	if err == nil {
		return nil
	}
	return &CharonError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CharonError {
	if err == nil {
		return nil
	}
	return &CharonError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CharonError) WithDetail(key string, value interface{}) *CharonError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CharonError) WithDetails(details map[string]interface{}) *CharonError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var charonErr *CharonError
	if errors.As(err, &charonErr) {
		return charonErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CharonError
func GetErrorCode(err error) ErrorCode {
	var charonErr *CharonError
	if errors.As(err, &charonErr) {
		return charonErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CharonError
func GetErrorDetails(err error) map[string]interface{} {
	var charonErr *CharonError
	if errors.As(err, &charonErr) {
		return charonErr.Details
	}
	return nil
}
