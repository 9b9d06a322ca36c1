package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DailySummaryInput represents the input for the daily summary.
type DailySummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// DailyEntry is one day's totals within the month.
type DailyEntry struct {
	Date    time.Time
	Income  int64
	Expense int64
	Net     int64
}

// DailySummaryOutput represents the output of the daily summary.
type DailySummaryOutput struct {
	Year    int
	Month   time.Month
	Days    []DailyEntry
	Income  int64
	Expense int64
}

// DailySummaryUseCase handles the per-day monthly breakdown.
type DailySummaryUseCase struct {
	repository Repository
}

// NewDailySummaryUseCase creates a new DailySummaryUseCase instance.
func NewDailySummaryUseCase(repository Repository) *DailySummaryUseCase {
	return &DailySummaryUseCase{repository: repository}
}

// Execute returns the month's totals day by day. Days without
// transactions are omitted.
func (uc *DailySummaryUseCase) Execute(ctx context.Context, input DailySummaryInput) (*DailySummaryOutput, error) {
	from, to := monthRange(input.Year, input.Month)

	rows, err := uc.repository.FindDailySummaries(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily summaries: %w", err)
	}

	output := &DailySummaryOutput{Year: input.Year, Month: input.Month}
	for _, row := range rows {
		output.Days = append(output.Days, DailyEntry{
			Date:    row.Date,
			Income:  row.Income,
			Expense: row.Expense,
			Net:     row.Income - row.Expense,
		})
		output.Income += row.Income
		output.Expense += row.Expense
	}

	return output, nil
}
