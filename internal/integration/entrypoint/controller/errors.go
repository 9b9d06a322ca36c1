// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/dto"
)

// statusFor maps a domain error to its HTTP status. Unknown errors are
// internal server errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerror.ErrInvalidTransactionType),
		errors.Is(err, domainerror.ErrNonPositiveAmount),
		errors.Is(err, domainerror.ErrCategoryTypeMismatch),
		errors.Is(err, domainerror.ErrInvalidCategoryType),
		errors.Is(err, domainerror.ErrInvalidAccountName),
		errors.Is(err, domainerror.ErrNegativeInitialBalance),
		errors.Is(err, domainerror.ErrInvalidRegistration),
		errors.Is(err, domainerror.ErrInvalidExportFormat):
		return http.StatusBadRequest

	case errors.Is(err, domainerror.ErrLoginFailed),
		errors.Is(err, domainerror.ErrInvalidToken),
		errors.Is(err, domainerror.ErrExpiredToken),
		errors.Is(err, domainerror.ErrMissingToken):
		return http.StatusUnauthorized

	case errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction),
		errors.Is(err, domainerror.ErrNotAuthorizedToAccessAccount),
		errors.Is(err, domainerror.ErrNotAuthorizedToModifyCategory):
		return http.StatusForbidden

	case errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrAccountNotFound),
		errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, domainerror.ErrInsufficientBalance),
		errors.Is(err, domainerror.ErrBalanceWouldBeNegative),
		errors.Is(err, domainerror.ErrEmailAlreadyExists),
		errors.Is(err, domainerror.ErrCategoryNameExists),
		errors.Is(err, domainerror.ErrCategoryHasTransactions),
		errors.Is(err, domainerror.ErrAccountHasTransactions):
		return http.StatusConflict

	case errors.Is(err, domainerror.ErrRateLimited):
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}

// codeFor extracts the domain error code, if any.
func codeFor(err error) string {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		return string(authErr.Code)
	}
	var accountErr *domainerror.AccountError
	if errors.As(err, &accountErr) {
		return string(accountErr.Code)
	}
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		return string(categoryErr.Code)
	}
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		return string(transactionErr.Code)
	}
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		return string(reportErr.Code)
	}
	return ""
}

// respondError writes the uniform error body for a domain error.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  codeFor(err),
	})
}

// respondUnauthenticated writes the response for a missing user context.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
