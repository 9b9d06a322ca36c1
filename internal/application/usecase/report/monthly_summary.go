package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// CategoryShare is one category's slice of a monthly total, with its
// percentage of that total.
type CategoryShare struct {
	CategoryID   uuid.UUID
	CategoryName string
	Amount       int64
	Count        int
	Percentage   decimal.Decimal
}

// MonthlySummaryInput represents the input for the monthly summary.
type MonthlySummaryInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// MonthlySummaryOutput represents the output of the monthly summary.
type MonthlySummaryOutput struct {
	Year         int
	Month        time.Month
	TotalIncome  int64
	TotalExpense int64
	Net          int64
	Income       []CategoryShare
	Expense      []CategoryShare
}

// MonthlySummaryUseCase handles the per-category monthly breakdown.
type MonthlySummaryUseCase struct {
	repository Repository
}

// NewMonthlySummaryUseCase creates a new MonthlySummaryUseCase instance.
func NewMonthlySummaryUseCase(repository Repository) *MonthlySummaryUseCase {
	return &MonthlySummaryUseCase{repository: repository}
}

// Execute returns the month's totals split by category and type. Each
// share carries its percentage of the type total, rounded to one decimal
// place; when a type total is zero every percentage of that type is zero.
func (uc *MonthlySummaryUseCase) Execute(ctx context.Context, input MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	from, to := monthRange(input.Year, input.Month)

	rows, err := uc.repository.FindCategorySummaries(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load category summaries: %w", err)
	}

	output := &MonthlySummaryOutput{Year: input.Year, Month: input.Month}
	for _, row := range rows {
		if row.Type == entity.TransactionTypeIncome {
			output.TotalIncome += row.Total
		} else {
			output.TotalExpense += row.Total
		}
	}
	output.Net = output.TotalIncome - output.TotalExpense

	for _, row := range rows {
		var total int64
		if row.Type == entity.TransactionTypeIncome {
			total = output.TotalIncome
		} else {
			total = output.TotalExpense
		}

		share := CategoryShare{
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
			Amount:       row.Total,
			Count:        row.Count,
			Percentage:   percentageOf(row.Total, total),
		}

		if row.Type == entity.TransactionTypeIncome {
			output.Income = append(output.Income, share)
		} else {
			output.Expense = append(output.Expense, share)
		}
	}

	sortShares(output.Income)
	sortShares(output.Expense)

	return output, nil
}

// percentageOf returns amount/total as a percentage rounded to one
// decimal place, or zero when total is zero.
func percentageOf(amount, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 1)
}

// sortShares orders shares by amount descending, then name for stability.
func sortShares(shares []CategoryShare) {
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].CategoryName < shares[j].CategoryName
	})
}
