// Package ledger contains the transaction use cases that keep account
// balances consistent with the set of recorded transactions.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(uow adapter.UnitOfWork) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{uow: uow}
}

// Execute performs the transaction deletion. The balance reversal and the
// record removal commit as one atomic unit of work. Deleting an INCOME
// whose reversal would leave the linked account negative is rejected: a
// later expense may already have been approved against that income.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := uc.uow.Do(ctx, func(ctx context.Context, stores adapter.Stores) error {
		transaction, err := stores.Transactions.FindByID(ctx, input.TransactionID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTransactionNotFound) {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeTransactionNotFound,
					"transaction not found",
					domainerror.ErrTransactionNotFound,
				)
			}
			return fmt.Errorf("failed to find transaction: %w", err)
		}

		if transaction.UserID != input.UserID {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeNotAuthorizedTransaction,
				"not authorized to delete this transaction",
				domainerror.ErrNotAuthorizedToModifyTransaction,
			)
		}

		var account *entity.Account
		if transaction.AccountID != nil {
			account, err = resolveAccountForUpdate(ctx, stores, input.UserID, *transaction.AccountID)
			if err != nil {
				return err
			}

			if transaction.Type == entity.TransactionTypeIncome && account.Balance-transaction.Amount < 0 {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeBalanceWouldBeNegative,
					"deleting this transaction would make account balance negative",
					domainerror.ErrBalanceWouldBeNegative,
				)
			}
		}

		if account != nil {
			reverseBalance(account, transaction)
			if err := stores.Accounts.Save(ctx, account); err != nil {
				return fmt.Errorf("failed to save account balance: %w", err)
			}
		}

		if err := stores.Transactions.Delete(ctx, transaction.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteTransactionOutput{Success: true}, nil
}
