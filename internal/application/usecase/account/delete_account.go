package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepository     adapter.AccountRepository
	transactionRepository adapter.TransactionRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepository adapter.AccountRepository,
	transactionRepository adapter.TransactionRepository,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepository:     accountRepository,
		transactionRepository: transactionRepository,
	}
}

// Execute performs the account deletion. An account still referenced by
// any transaction cannot be deleted, regardless of its balance.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := uc.accountRepository.FindByID(ctx, input.AccountID)
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

	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"not authorized to delete this account",
			domainerror.ErrNotAuthorizedToAccessAccount,
		)
	}

	inUse, err := uc.transactionRepository.ExistsByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account usage: %w", err)
	}
	if inUse {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountHasTransactions,
			"account is referenced by existing transactions",
			domainerror.ErrAccountHasTransactions,
		)
	}

	if err := uc.accountRepository.Delete(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Success: true}, nil
}
