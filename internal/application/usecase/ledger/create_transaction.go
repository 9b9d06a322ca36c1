// Package ledger contains the transaction use cases that keep account
// balances consistent with the set of recorded transactions.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	AccountID   *uuid.UUID
	Type        entity.TransactionType
	Amount      int64
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(uow adapter.UnitOfWork) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{uow: uow}
}

// Execute performs the transaction creation. The record insert and the
// account balance adjustment commit as one atomic unit of work; any
// precondition failure leaves no observable change.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME' or 'EXPENSE'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrInvalidTransactionType,
		)
	}

	var output *TransactionOutput

	err := uc.uow.Do(ctx, func(ctx context.Context, stores adapter.Stores) error {
		if err := requireOwner(ctx, stores, input.UserID); err != nil {
			return err
		}

		category, err := resolveCategory(ctx, stores, input.UserID, input.CategoryID, input.Type)
		if err != nil {
			return err
		}

		if input.Amount <= 0 {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeNonPositiveAmount,
				"amount must be greater than zero",
				domainerror.ErrNonPositiveAmount,
			)
		}

		var account *entity.Account
		if input.AccountID != nil {
			account, err = resolveAccountForUpdate(ctx, stores, input.UserID, *input.AccountID)
			if err != nil {
				return err
			}

			if input.Type == entity.TransactionTypeExpense && account.Balance < input.Amount {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeInsufficientBalance,
					"insufficient account balance",
					domainerror.ErrInsufficientBalance,
				)
			}
		}

		transaction := entity.NewTransaction(
			input.UserID,
			input.CategoryID,
			input.AccountID,
			input.Type,
			input.Amount,
			input.Description,
			input.Date,
		)

		if err := stores.Transactions.Create(ctx, transaction); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if account != nil {
			applyBalance(account, transaction)
			if err := stores.Accounts.Save(ctx, account); err != nil {
				return fmt.Errorf("failed to save account balance: %w", err)
			}
		}

		output = newTransactionOutput(transaction, account, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: output}, nil
}
