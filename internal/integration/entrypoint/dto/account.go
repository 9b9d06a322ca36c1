package dto

import (
	"time"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/account"
)

// CreateAccountRequest is the body for POST /accounts.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required"`
	InitialBalance int64  `json:"initialBalance"`
}

// UpdateAccountRequest is the body for PATCH /accounts/:id. Only the name
// can change; balances move exclusively through transactions.
type UpdateAccountRequest struct {
	Name string `json:"name" binding:"required"`
}

// AccountResponse is the representation of a single account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToAccountResponse converts an account output to a response body.
func ToAccountResponse(output *account.AccountOutput) AccountResponse {
	return AccountResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Balance:   output.Balance,
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
}

// AccountListResponse is the body for GET /accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountListResponse converts account outputs to a response body.
func ToAccountListResponse(outputs []*account.AccountOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(outputs))
	for i, o := range outputs {
		accounts[i] = ToAccountResponse(o)
	}
	return AccountListResponse{Accounts: accounts}
}

// AccountSummaryResponse is the body for GET /accounts/summary.
type AccountSummaryResponse struct {
	TotalBalance int64             `json:"totalBalance"`
	AccountCount int               `json:"accountCount"`
	Accounts     []AccountResponse `json:"accounts"`
}

// ToAccountSummaryResponse converts a summary output to a response body.
func ToAccountSummaryResponse(output *account.AccountSummaryOutput) AccountSummaryResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, o := range output.Accounts {
		accounts[i] = ToAccountResponse(o)
	}
	return AccountSummaryResponse{
		TotalBalance: output.TotalBalance,
		AccountCount: output.AccountCount,
		Accounts:     accounts,
	}
}
