package errors

import (
	"net/http"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/errors"
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

// Is matches errors carrying the same business code, so that copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
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
	// Login and session errors
	ErrInvalidLoginResponse = NewBaseError(
		http.StatusBadGateway,
		"INVALID_LOGIN_RESPONSE",
		"Login response carries no complete token pair",
		"",
	)

	ErrInvalidSessionShape = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SESSION_SHAPE",
		"A session must carry both a user and a complete token pair, or neither",
		"",
	)

	ErrPortalAccessDenied = NewBaseError(
		http.StatusForbidden,
		"PORTAL_ACCESS_DENIED",
		"This account may not sign in to this portal",
		"",
	)

	// Recovered locally, never returned to a caller
	ErrCorruptPersistedSession = NewBaseError(
		http.StatusInternalServerError,
		"CORRUPT_PERSISTED_SESSION",
		"Persisted session could not be read",
		"",
	)

	ErrSubscriptionCheckFailed = NewBaseError(
		http.StatusBadGateway,
		"SUBSCRIPTION_CHECK_FAILED",
		"Subscription status could not be determined",
		"",
	)

	// Gate errors
	ErrEvaluationSuperseded = NewBaseError(
		http.StatusConflict,
		"EVALUATION_SUPERSEDED",
		"Session changed during evaluation",
		"",
	)

	// Upstream errors
	ErrUpstreamUnavailable = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_UNAVAILABLE",
		"Marketplace API is unavailable",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid login or password",
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
		"Internal error",
		"",
	)
)
