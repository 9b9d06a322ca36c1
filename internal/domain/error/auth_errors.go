// Package error defines domain-specific errors for the household ledger application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrLoginFailed is returned when the email or password is incorrect.
	ErrLoginFailed = errors.New("email or password is incorrect")

	// ErrInvalidToken is returned when a token is malformed or has a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("expired token")

	// ErrMissingToken is returned when no token was provided on a protected route.
	ErrMissingToken = errors.New("missing token")

	// ErrRateLimited is returned when too many requests were made in a time window.
	ErrRateLimited = errors.New("too many requests")

	// ErrInvalidRegistration is returned when registration input is malformed.
	ErrInvalidRegistration = errors.New("invalid registration input")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailExists         AuthErrorCode = "AUTH-010001"
	ErrCodeLoginFailed         AuthErrorCode = "AUTH-010002"
	ErrCodeUserNotFound        AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidRegistration AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
