// Package errors holds the application errors surfaced to API clients.
package errors

import (
	"net/http"

	"bpaml/internal/errors"
)

// AppError is an error that knows how it is rendered in an API response.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a fixed application error. Sentinels are compared with errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage annotates the sentinel for logs while keeping it matchable.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func newNotFound(code, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, code, message, "")
}

func newBadRequest(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

var (
	ErrAthleteNotFound    = newNotFound("ATHLETE_NOT_FOUND", "Athlete not found")
	ErrCredentialNotFound = newNotFound("CREDENTIAL_NOT_FOUND", "No linked Strava account for this athlete")
	ErrActivityNotFound   = newNotFound("ACTIVITY_NOT_FOUND", "Activity not found")
	ErrNotFound           = newNotFound("NOT_FOUND", "Resource not found")

	ErrOAuthStateInvalid = newBadRequest("OAUTH_STATE_INVALID", "Invalid or expired authorization state")
	ErrOAuthCodeInvalid  = newBadRequest("OAUTH_CODE_INVALID", "Invalid authorization code")
	ErrValidationFailed  = newBadRequest("VALIDATION_FAILED", "Input validation failed")

	// Strava side
	ErrProviderAuthInvalid = NewBaseError(http.StatusUnauthorized, "PROVIDER_AUTH_INVALID",
		"Strava authorization expired or was revoked, please reconnect your account", "")
	ErrProviderUnavailable = NewBaseError(http.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE",
		"Strava is unavailable, please try again later", "")
	ErrMalformedPayload = NewBaseError(http.StatusBadGateway, "MALFORMED_PAYLOAD",
		"Strava returned data that could not be understood", "")

	ErrActivityAlreadySaved = NewBaseError(http.StatusConflict, "ACTIVITY_ALREADY_SAVED",
		"Activity has already been saved", "")
	ErrRouteUnavailable = NewBaseError(http.StatusUnprocessableEntity, "ROUTE_UNAVAILABLE",
		"Activity has no route that can be displayed", "")

	ErrForbidden     = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
)

// DatabaseExecuteError wraps a failed statement. The cause stays out of the response.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
