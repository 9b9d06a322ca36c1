package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// UpdateAccountInput represents the input for account rename. The balance
// is deliberately absent: it only moves through transaction use cases.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	UserID    uuid.UUID
	Name      string
}

// UpdateAccountOutput represents the output of account rename.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account rename logic.
type UpdateAccountUseCase struct {
	accountRepository adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepository adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepository: accountRepository}
}

// Execute performs the account rename.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			fmt.Sprintf("account name must be between 1 and %d characters", MaxAccountNameLength),
			domainerror.ErrInvalidAccountName,
		)
	}

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
			"not authorized to modify this account",
			domainerror.ErrNotAuthorizedToAccessAccount,
		)
	}

	account.Name = name
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepository.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: newAccountOutput(account)}, nil
}
