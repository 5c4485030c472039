package errors

import (
	"net/http"

	"lightmap/internal/errors"
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

// Predefined error types
var (
	// Input errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	ErrInvalidBoundary = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDARY",
		"South-west corner must not be north of the north-east corner",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Marker errors
	ErrMarkerNotFound = NewBaseError(
		http.StatusNotFound,
		"MARKER_NOT_FOUND",
		"Marker not found",
		"",
	)

	ErrMarkerOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"MARKER_OWNERSHIP_VIOLATION",
		"Only the reporting account can modify this marker",
		"",
	)

	// ErrMergeRaceDetected is retried by the merge engine and only reaches
	// callers wrapped in ErrPersistenceFailure.
	ErrMergeRaceDetected = NewBaseError(
		http.StatusConflict,
		"MERGE_RACE_DETECTED",
		"Marker was modified concurrently",
		"",
	)

	ErrPersistenceFailure = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILURE",
		"Failed to store the observation",
		"",
	)

	// Account errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for errors.Is/As.
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

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// PersistenceFailure wraps the cause of an aborted write so callers can match
// ErrPersistenceFailure while the cause stays inspectable.
func PersistenceFailure(cause error, details string) error {
	return &persistenceFailure{cause: cause, details: details}
}

type persistenceFailure struct {
	cause   error
	details string
}

func (e *persistenceFailure) Error() string {
	return errors.Wrap(e.cause, ErrPersistenceFailure.Message()).Error()
}

func (e *persistenceFailure) Unwrap() []error {
	return []error{ErrPersistenceFailure, e.cause}
}

func (e *persistenceFailure) HTTPCode() int     { return ErrPersistenceFailure.HTTPCode() }
func (e *persistenceFailure) ErrorCode() string { return ErrPersistenceFailure.ErrorCode() }
func (e *persistenceFailure) Message() string   { return ErrPersistenceFailure.Message() }
func (e *persistenceFailure) Details() string   { return e.details }
