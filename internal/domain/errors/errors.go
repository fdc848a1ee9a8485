package errors

import (
	"net/http"

	"studyhub/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Signup conflicts. The nickname check runs before the email check, so a
	// request that collides on both reports the nickname conflict.
	ErrNicknameTaken = NewBaseError(
		http.StatusConflict,
		"NICKNAME_TAKEN",
		"This nickname is already in use",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already in use",
		"",
	)

	// Fallback when a unique index fires but the violated column cannot be
	// identified from the driver error.
	ErrDuplicateUser = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_USER",
		"A user with these details already exists",
		"",
	)

	// Lookup failures
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User does not exist",
		"",
	)

	ErrStudyNotFound = NewBaseError(
		http.StatusNotFound,
		"STUDY_NOT_FOUND",
		"Study does not exist",
		"",
	)

	// Authentication failures
	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Password does not match",
		"",
	)

	// ErrCredentialCorrupted covers accounts whose stored hash or salt is not
	// present as text, e.g. OAuth-only accounts hit via password login.
	ErrCredentialCorrupted = NewBaseError(
		http.StatusInternalServerError,
		"CREDENTIAL_CORRUPTED",
		"Server configuration error: invalid stored credential",
		"",
	)

	// OAuth upstream failures
	ErrOAuthProvider = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_PROVIDER_ERROR",
		"Failed to authenticate with the OAuth provider",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
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
