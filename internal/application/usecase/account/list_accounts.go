package account

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
)

// ListAccountsInput represents the input for account listing.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of account listing.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	accountRepository adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepository adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepository: accountRepository}
}

// Execute returns the user's accounts ordered by creation time.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	outputs := make([]*AccountOutput, 0, len(accounts))
	for _, a := range accounts {
		outputs = append(outputs, newAccountOutput(a))
	}

	return &ListAccountsOutput{Accounts: outputs}, nil
}
