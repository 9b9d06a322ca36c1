package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	InitialBalance int64
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepository adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepository adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepository: accountRepository}
}

// Execute performs the account creation. The initial balance may be zero
// but never negative; no account balance is ever allowed below zero.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			fmt.Sprintf("account name must be between 1 and %d characters", MaxAccountNameLength),
			domainerror.ErrInvalidAccountName,
		)
	}

	if input.InitialBalance < 0 {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNegativeInitialBalance,
			"initial balance must not be negative",
			domainerror.ErrNegativeInitialBalance,
		)
	}

	account := entity.NewAccount(input.UserID, name, input.InitialBalance)
	if err := uc.accountRepository.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: newAccountOutput(account)}, nil
}
