// Package ledger contains the transaction use cases that keep account
// balances consistent with the set of recorded transactions.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// TransactionOutput represents the full projection of a committed transaction.
type TransactionOutput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AccountID    *uuid.UUID
	AccountName  string
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.TransactionType
	Amount       int64
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// newTransactionOutput builds a TransactionOutput from the committed entities.
// account may be nil for transactions without account linkage.
func newTransactionOutput(txn *entity.Transaction, account *entity.Account, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:           txn.ID,
		UserID:       txn.UserID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Type:         txn.Type,
		Amount:       txn.Amount,
		Description:  txn.Description,
		Date:         txn.Date,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
	if account != nil {
		out.AccountID = &account.ID
		out.AccountName = account.Name
	}
	return out
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
