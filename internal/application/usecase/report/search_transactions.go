package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SearchTransactionsInput represents the input for a date-range listing.
// Zero From/To fall back to the current month.
type SearchTransactionsInput struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
}

// SearchTransactionsOutput represents the output of a date-range listing.
type SearchTransactionsOutput struct {
	Transactions []TransactionRow
}

// SearchTransactionsUseCase lists a user's transactions over a half-open
// date range [From, To), oldest first.
type SearchTransactionsUseCase struct {
	repository Repository
}

// NewSearchTransactionsUseCase creates a new SearchTransactionsUseCase instance.
func NewSearchTransactionsUseCase(repository Repository) *SearchTransactionsUseCase {
	return &SearchTransactionsUseCase{repository: repository}
}

// Execute returns the transactions in the requested range.
func (uc *SearchTransactionsUseCase) Execute(ctx context.Context, input SearchTransactionsInput) (*SearchTransactionsOutput, error) {
	from, to := input.From, input.To
	if from.IsZero() || to.IsZero() {
		now := time.Now().UTC()
		from, to = monthRange(now.Year(), now.Month())
	}

	rows, err := uc.repository.FindByDateRange(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}

	return &SearchTransactionsOutput{Transactions: rows}, nil
}
