package error

import (
	"errors"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeDuplicateAccount    = 4001
	CodeInvalidCredential   = 4002
	CodeMissingCredential   = 4011
	CodeMalformedCredential = 4012
	CodeExpiredCredential   = 4013
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrMissingCredential is returned when a protected request carries no bearer token
	ErrMissingCredential = errors.New("authorization credential is missing")

	// ErrMalformedCredential is returned when a token cannot be parsed or its signature fails
	ErrMalformedCredential = errors.New("authorization credential is malformed")

	// ErrExpiredCredential is returned when a token's embedded expiry has passed
	ErrExpiredCredential = errors.New("authorization credential has expired")

	// ErrDuplicateAccount is returned when a username or email is already registered
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredential is returned uniformly for unknown email or wrong password
	ErrInvalidCredential = errors.New("invalid email or password")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a record lookup by key matches nothing
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem reaching the store
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingCredential):
		return CodeMissingCredential
	case errors.Is(err, ErrMalformedCredential):
		return CodeMalformedCredential
	case errors.Is(err, ErrExpiredCredential):
		return CodeExpiredCredential
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrInvalidCredential):
		return CodeInvalidCredential
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status class used at the
// request boundary. Anything unclassified is a 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingCredential),
		errors.Is(err, ErrMalformedCredential),
		errors.Is(err, ErrExpiredCredential):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateAccount),
		errors.Is(err, ErrInvalidCredential),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to expose for an error. Server-side
// faults collapse to a generic message so no internal detail leaks.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return ErrInternalServer.Error()
	}
	return err.Error()
}

// IsAuthError checks whether the error belongs to the credential taxonomy
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingCredential) ||
		errors.Is(err, ErrMalformedCredential) ||
		errors.Is(err, ErrExpiredCredential)
}

// IsNotFoundError checks if the error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
