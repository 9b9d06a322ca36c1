package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Recent listing limits.
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50
)

// RecentTransactionsInput represents the input for the recent listing.
// A non-positive Limit falls back to DefaultRecentLimit.
type RecentTransactionsInput struct {
	UserID uuid.UUID
	Limit  int
}

// RecentTransactionsOutput represents the output of the recent listing.
type RecentTransactionsOutput struct {
	Transactions []TransactionRow
}

// RecentTransactionsUseCase handles the recent activity listing.
type RecentTransactionsUseCase struct {
	repository Repository
}

// NewRecentTransactionsUseCase creates a new RecentTransactionsUseCase instance.
func NewRecentTransactionsUseCase(repository Repository) *RecentTransactionsUseCase {
	return &RecentTransactionsUseCase{repository: repository}
}

// Execute returns the user's most recent transactions, newest first.
func (uc *RecentTransactionsUseCase) Execute(ctx context.Context, input RecentTransactionsInput) (*RecentTransactionsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	rows, err := uc.repository.FindRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return &RecentTransactionsOutput{Transactions: rows}, nil
}
