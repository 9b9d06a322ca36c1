package account

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
)

// AccountSummaryInput represents the input for the account summary.
type AccountSummaryInput struct {
	UserID uuid.UUID
}

// AccountSummaryOutput aggregates every account balance of a user.
type AccountSummaryOutput struct {
	TotalBalance int64
	AccountCount int
	Accounts     []*AccountOutput
}

// AccountSummaryUseCase handles the aggregate balance view.
type AccountSummaryUseCase struct {
	accountRepository adapter.AccountRepository
}

// NewAccountSummaryUseCase creates a new AccountSummaryUseCase instance.
func NewAccountSummaryUseCase(accountRepository adapter.AccountRepository) *AccountSummaryUseCase {
	return &AccountSummaryUseCase{accountRepository: accountRepository}
}

// Execute returns the user's accounts with their summed balance.
func (uc *AccountSummaryUseCase) Execute(ctx context.Context, input AccountSummaryInput) (*AccountSummaryOutput, error) {
	accounts, err := uc.accountRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	output := &AccountSummaryOutput{
		AccountCount: len(accounts),
		Accounts:     make([]*AccountOutput, 0, len(accounts)),
	}
	for _, a := range accounts {
		output.TotalBalance += a.Balance
		output.Accounts = append(output.Accounts, newAccountOutput(a))
	}

	return output, nil
}
