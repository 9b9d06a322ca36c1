package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// DashboardInput represents the input for the dashboard view. Now
// determines the current month; a zero value means time.Now.
type DashboardInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// DashboardOutput aggregates the landing page data: total balance across
// accounts, the current month's totals and the latest transactions.
type DashboardOutput struct {
	TotalBalance int64
	AccountCount int
	MonthIncome  int64
	MonthExpense int64
	MonthNet     int64
	Recent       []TransactionRow
}

// DashboardUseCase handles the dashboard aggregation.
type DashboardUseCase struct {
	accountRepository adapter.AccountRepository
	repository        Repository
}

// NewDashboardUseCase creates a new DashboardUseCase instance.
func NewDashboardUseCase(accountRepository adapter.AccountRepository, repository Repository) *DashboardUseCase {
	return &DashboardUseCase{accountRepository: accountRepository, repository: repository}
}

// Execute assembles the dashboard.
func (uc *DashboardUseCase) Execute(ctx context.Context, input DashboardInput) (*DashboardOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	accounts, err := uc.accountRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	output := &DashboardOutput{AccountCount: len(accounts)}
	for _, a := range accounts {
		output.TotalBalance += a.Balance
	}

	from, to := monthRange(now.Year(), now.Month())
	summaries, err := uc.repository.FindCategorySummaries(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load month summaries: %w", err)
	}
	for _, row := range summaries {
		if row.Type == entity.TransactionTypeIncome {
			output.MonthIncome += row.Total
		} else {
			output.MonthExpense += row.Total
		}
	}
	output.MonthNet = output.MonthIncome - output.MonthExpense

	recent, err := uc.repository.FindRecent(ctx, input.UserID, DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	output.Recent = recent

	return output, nil
}
