// Package error defines domain-specific errors for the household ledger application.
package error

import "errors"

// Transaction (ledger) domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when the transaction does not belong to the user.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is not INCOME or EXPENSE.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNonPositiveAmount is returned when the transaction amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrCategoryTypeMismatch is returned when the transaction type differs from the category type.
	ErrCategoryTypeMismatch = errors.New("category type does not match transaction type")

	// ErrInsufficientBalance is returned when an expense exceeds the account's available balance.
	ErrInsufficientBalance = errors.New("insufficient account balance")

	// ErrBalanceWouldBeNegative is returned when reversing a transaction would leave the
	// account balance below zero.
	ErrBalanceWouldBeNegative = errors.New("operation would make account balance negative")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010003"
	ErrCodeNonPositiveAmount        TransactionErrorCode = "TXN-010004"
	ErrCodeCategoryTypeMismatch     TransactionErrorCode = "TXN-010005"

	// Balance conflict errors (02XXXX)
	ErrCodeInsufficientBalance    TransactionErrorCode = "TXN-020001"
	ErrCodeBalanceWouldBeNegative TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
