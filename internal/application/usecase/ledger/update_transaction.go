// Package ledger contains the transaction use cases that keep account
// balances consistent with the set of recorded transactions.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Every field of the transaction is replaced, including account linkage.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	CategoryID    uuid.UUID
	AccountID     *uuid.UUID
	Type          entity.TransactionType
	Amount        int64
	Description   string
	Date          time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
//
// An update reverses the old transaction's balance effect on its old
// account, mutates the record, then applies the new effect on the new
// account, all inside one unit of work. The pre-checks cover all four
// combinations of {same account, different account} x {same type,
// different type}: the target account is validated against the effective
// balance it would have after the reversal, and the reversal itself must
// not leave the old account negative.
type UpdateTransactionUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(uow adapter.UnitOfWork) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{uow: uow}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'INCOME' or 'EXPENSE'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	var output *TransactionOutput

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
				"not authorized to update this transaction",
				domainerror.ErrNotAuthorizedToModifyTransaction,
			)
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

		// Lock the old account, then the new one. When both are the same
		// row only one lock is taken and one struct is shared, so the
		// reversal and the re-apply accumulate on a single balance.
		var oldAccount *entity.Account
		if transaction.AccountID != nil {
			oldAccount, err = resolveAccountForUpdate(ctx, stores, input.UserID, *transaction.AccountID)
			if err != nil {
				return err
			}
		}

		newAccount := oldAccount
		sameAccount := oldAccount != nil && input.AccountID != nil && oldAccount.ID == *input.AccountID
		if input.AccountID == nil {
			newAccount = nil
		} else if !sameAccount {
			newAccount, err = resolveAccountForUpdate(ctx, stores, input.UserID, *input.AccountID)
			if err != nil {
				return err
			}
		}

		if err := checkBalances(transaction, oldAccount, newAccount, sameAccount, input.Type, input.Amount); err != nil {
			return err
		}

		reverseBalance(oldAccount, transaction)

		transaction.CategoryID = input.CategoryID
		transaction.AccountID = input.AccountID
		transaction.Type = input.Type
		transaction.Amount = input.Amount
		transaction.Description = input.Description
		transaction.Date = input.Date
		transaction.UpdatedAt = time.Now().UTC()

		applyBalance(newAccount, transaction)

		if oldAccount != nil {
			if err := stores.Accounts.Save(ctx, oldAccount); err != nil {
				return fmt.Errorf("failed to save account balance: %w", err)
			}
		}
		if newAccount != nil && !sameAccount {
			if err := stores.Accounts.Save(ctx, newAccount); err != nil {
				return fmt.Errorf("failed to save account balance: %w", err)
			}
		}

		if err := stores.Transactions.Update(ctx, transaction); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		output = newTransactionOutput(transaction, newAccount, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: output}, nil
}

// checkBalances rejects an update whose reversal-then-reapply sequence
// would leave any touched account negative.
//
// The effective balance of the target account is its current balance minus
// the old transaction's signed effect when old and new account are the
// same row (that effect is about to be reversed). An expense that exceeds
// the effective balance is an INSUFFICIENT_BALANCE conflict; any other
// prospective negative balance, on the target or on the account the
// transaction is moving away from, is a BALANCE_WOULD_BE_NEGATIVE conflict.
func checkBalances(
	old *entity.Transaction,
	oldAccount, newAccount *entity.Account,
	sameAccount bool,
	newType entity.TransactionType,
	newAmount int64,
) error {
	if newAccount != nil {
		effective := newAccount.Balance
		if sameAccount {
			effective -= old.SignedAmount()
		}

		if newType == entity.TransactionTypeExpense {
			if effective < newAmount {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeInsufficientBalance,
					"insufficient account balance",
					domainerror.ErrInsufficientBalance,
				)
			}
		} else if effective+newAmount < 0 {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeBalanceWouldBeNegative,
				"update would make account balance negative",
				domainerror.ErrBalanceWouldBeNegative,
			)
		}
	}

	if oldAccount != nil && !sameAccount {
		if oldAccount.Balance-old.SignedAmount() < 0 {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeBalanceWouldBeNegative,
				"update would make account balance negative",
				domainerror.ErrBalanceWouldBeNegative,
			)
		}
	}

	return nil
}
