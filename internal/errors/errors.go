package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when signing up with an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrPasswordMismatch is returned when password and passwordCheck differ at signup.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrInvalidCredentials is returned when the password does not verify at login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrSessionNotFound is returned when a bearer token resolves to no session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrMissingAuthHeader is returned when the Authorization header is absent.
	ErrMissingAuthHeader = errors.New("missing authorization header")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The status codes are
// contractual: 404 unknown email, 409 duplicate email, 400 password
// mismatch, 401 bad password or unknown session, 422 missing header,
// 500 for anything the store threw at us.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrPasswordMismatch):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_MISMATCH")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	case errors.Is(err, ErrMissingAuthHeader):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "MISSING_AUTH_HEADER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
