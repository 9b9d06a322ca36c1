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

// applyBalance applies a transaction's effect to an account balance
// (income adds, expense subtracts). A nil account is a no-op.
func applyBalance(account *entity.Account, txn *entity.Transaction) {
	if account == nil {
		return
	}
	account.Balance += txn.SignedAmount()
	account.UpdatedAt = time.Now().UTC()
}

// reverseBalance undoes a transaction's effect on an account balance
// (income subtracts, expense adds back). A nil account is a no-op.
func reverseBalance(account *entity.Account, txn *entity.Transaction) {
	if account == nil {
		return
	}
	account.Balance -= txn.SignedAmount()
	account.UpdatedAt = time.Now().UTC()
}

// requireOwner verifies that the calling user exists.
func requireOwner(ctx context.Context, stores adapter.Stores, userID uuid.UUID) error {
	exists, err := stores.Users.ExistsByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	return nil
}

// resolveCategory loads a category and enforces, in order: existence, type
// compatibility with the requested transaction type, and ownership by the
// calling user.
func resolveCategory(
	ctx context.Context,
	stores adapter.Stores,
	userID uuid.UUID,
	categoryID uuid.UUID,
	transactionType entity.TransactionType,
) (*entity.Category, error) {
	category, err := stores.Categories.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if string(category.Type) != string(transactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeCategoryTypeMismatch,
			"category type does not match transaction type",
			domainerror.ErrCategoryTypeMismatch,
		)
	}

	if category.UserID != userID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeNotAuthorizedCategory,
			"category does not belong to user",
			domainerror.ErrNotAuthorizedToModifyCategory,
		)
	}

	return category, nil
}

// resolveAccountForUpdate loads an account under a row-level exclusive lock
// and enforces existence and ownership. The lock is held until the
// surrounding unit of work commits, serializing balance mutations per account.
func resolveAccountForUpdate(
	ctx context.Context,
	stores adapter.Stores,
	userID uuid.UUID,
	accountID uuid.UUID,
) (*entity.Account, error) {
	account, err := stores.Accounts.FindByIDForUpdate(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if account.UserID != userID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"account does not belong to user",
			domainerror.ErrNotAuthorizedToAccessAccount,
		)
	}

	return account, nil
}
