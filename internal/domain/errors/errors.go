package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so detailed copies still match the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors are raised before any store call
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Invalid filter selection",
		"",
	)

	// Entity lookups
	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_FOUND",
		"Provider not found",
		"",
	)

	ErrReceiverNotFound = NewBaseError(
		http.StatusNotFound,
		"RECEIVER_NOT_FOUND",
		"Receiver not found",
		"",
	)

	ErrFoodListingNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOD_LISTING_NOT_FOUND",
		"Food listing not found",
		"",
	)

	ErrClaimNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_NOT_FOUND",
		"Claim not found",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Report not found",
		"",
	)

	// Store constraint outcomes
	ErrReferenceConflict = NewBaseError(
		http.StatusConflict,
		"REFERENCE_CONFLICT",
		"The operation conflicts with a referenced record",
		"",
	)

	ErrConstraintViolated = NewBaseError(
		http.StatusBadRequest,
		"CONSTRAINT_VIOLATED",
		"The store rejected the values",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a store connectivity or execution failure, implementing the AppError interface.
// The underlying store message is surfaced verbatim in Details.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed: "+e.details).Error()
}

// Unwrap returns the underlying store error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns the operation and the underlying store message
func (e *DatabaseExecuteError) Details() string {
	if e.err == nil {
		return e.details
	}

	return e.details + ": " + e.err.Error()
}
