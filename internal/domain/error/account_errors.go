// Package error defines domain-specific errors for the household ledger application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthorizedToAccessAccount is returned when the account does not belong to the user.
	ErrNotAuthorizedToAccessAccount = errors.New("not authorized to access account")

	// ErrNegativeInitialBalance is returned when an account is created with a negative balance.
	ErrNegativeInitialBalance = errors.New("initial balance must not be negative")

	// ErrAccountHasTransactions is returned when deleting an account still referenced by transactions.
	ErrAccountHasTransactions = errors.New("account has transactions")

	// ErrInvalidAccountName is returned when the account name is empty or too long.
	ErrInvalidAccountName = errors.New("invalid account name")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010001"
	ErrCodeNotAuthorizedAccount   AccountErrorCode = "ACC-010002"
	ErrCodeNegativeInitialBalance AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountName     AccountErrorCode = "ACC-010004"

	// Conflict errors (02XXXX)
	ErrCodeAccountHasTransactions AccountErrorCode = "ACC-020001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
