// Package report contains the read-side use cases: summaries, recent
// activity, file exports and the dashboard. These never mutate the
// ledger, so repeated reads over unchanged data return identical results.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// CategorySummaryRow is one category's aggregate inside a date range.
type CategorySummaryRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.TransactionType
	Total        int64
	Count        int
}

// DailySummaryRow is one day's income and expense totals.
type DailySummaryRow struct {
	Date    time.Time
	Income  int64
	Expense int64
}

// TransactionRow is a denormalized transaction for listings and exports.
type TransactionRow struct {
	ID           uuid.UUID
	Type         entity.TransactionType
	Amount       int64
	Description  string
	Date         time.Time
	CategoryName string
	AccountName  string
	CreatedAt    time.Time
}

// Repository defines the aggregate queries backing the report use cases.
// Ranges are half-open: from inclusive, to exclusive.
type Repository interface {
	// FindCategorySummaries returns per-category totals for the range.
	FindCategorySummaries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategorySummaryRow, error)

	// FindDailySummaries returns per-day totals for the range, ordered by
	// date ascending. Days without transactions are absent.
	FindDailySummaries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]DailySummaryRow, error)

	// FindRecent returns the user's most recent transactions ordered by
	// date descending, then creation time descending.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]TransactionRow, error)

	// FindByDateRange returns the user's transactions in the range ordered
	// by date ascending.
	FindByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]TransactionRow, error)
}

// monthRange returns the half-open UTC range covering a calendar month.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
