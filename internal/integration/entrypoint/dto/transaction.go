package dto

import (
	"time"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/ledger"
)

// CreateTransactionRequest is the body for POST /transactions.
// AccountID is optional; a transaction without one records history only
// and touches no balance.
type CreateTransactionRequest struct {
	CategoryID  string `json:"categoryId" binding:"required"`
	AccountID   string `json:"accountId"`
	Type        string `json:"type" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
}

// UpdateTransactionRequest is the body for PUT /transactions/:id. All
// fields are replaced.
type UpdateTransactionRequest struct {
	CategoryID  string `json:"categoryId" binding:"required"`
	AccountID   string `json:"accountId"`
	Type        string `json:"type" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
}

// TransactionResponse is the representation of a single transaction.
type TransactionResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	AccountID    *string   `json:"accountId,omitempty"`
	AccountName  string    `json:"accountName,omitempty"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToTransactionResponse converts a transaction output to a response body.
func ToTransactionResponse(output *ledger.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:           output.ID.String(),
		CategoryID:   output.CategoryID.String(),
		CategoryName: output.CategoryName,
		AccountName:  output.AccountName,
		Type:         string(output.Type),
		Amount:       output.Amount,
		Description:  output.Description,
		Date:         output.Date.Format("2006-01-02"),
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
	if output.AccountID != nil {
		id := output.AccountID.String()
		response.AccountID = &id
	}
	return response
}
