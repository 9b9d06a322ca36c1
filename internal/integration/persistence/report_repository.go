package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/report"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
)

// reportRepository implements the report.Repository interface with
// aggregate queries over the transactions table.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

// FindCategorySummaries returns per-category totals for the range.
func (r *reportRepository) FindCategorySummaries(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]report.CategorySummaryRow, error) {
	var results []struct {
		CategoryID   uuid.UUID `gorm:"column:category_id"`
		CategoryName string    `gorm:"column:category_name"`
		Type         string    `gorm:"column:type"`
		Total        int64     `gorm:"column:total"`
		Count        int       `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select("t.category_id, c.name as category_name, t.type, SUM(t.amount) as total, COUNT(*) as count").
		Joins("JOIN categories c ON c.id = t.category_id").
		Where("t.user_id = ? AND t.date >= ? AND t.date < ?", userID, from, to).
		Group("t.category_id, c.name, t.type").
		Order("total DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category summaries: %w", err)
	}

	rows := make([]report.CategorySummaryRow, len(results))
	for i, res := range results {
		rows[i] = report.CategorySummaryRow{
			CategoryID:   res.CategoryID,
			CategoryName: res.CategoryName,
			Type:         entity.TransactionType(res.Type),
			Total:        res.Total,
			Count:        res.Count,
		}
	}
	return rows, nil
}

// FindDailySummaries returns per-day income and expense totals.
func (r *reportRepository) FindDailySummaries(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]report.DailySummaryRow, error) {
	var results []struct {
		Date    time.Time `gorm:"column:date"`
		Income  int64     `gorm:"column:income"`
		Expense int64     `gorm:"column:expense"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(`date,
			SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END) as income,
			SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END) as expense`).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Group("date").
		Order("date ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily summaries: %w", err)
	}

	rows := make([]report.DailySummaryRow, len(results))
	for i, res := range results {
		rows[i] = report.DailySummaryRow{
			Date:    res.Date,
			Income:  res.Income,
			Expense: res.Expense,
		}
	}
	return rows, nil
}

// transactionRowResult is the scan target for denormalized listings.
type transactionRowResult struct {
	ID           uuid.UUID `gorm:"column:id"`
	Type         string    `gorm:"column:type"`
	Amount       int64     `gorm:"column:amount"`
	Description  string    `gorm:"column:description"`
	Date         time.Time `gorm:"column:date"`
	CategoryName string    `gorm:"column:category_name"`
	AccountName  string    `gorm:"column:account_name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (res transactionRowResult) toRow() report.TransactionRow {
	return report.TransactionRow{
		ID:           res.ID,
		Type:         entity.TransactionType(res.Type),
		Amount:       res.Amount,
		Description:  res.Description,
		Date:         res.Date,
		CategoryName: res.CategoryName,
		AccountName:  res.AccountName,
		CreatedAt:    res.CreatedAt,
	}
}

const transactionRowSelect = `t.id, t.type, t.amount, t.description, t.date, t.created_at,
	c.name as category_name, COALESCE(a.name, '') as account_name`

// FindRecent returns the newest transactions first.
func (r *reportRepository) FindRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]report.TransactionRow, error) {
	var results []transactionRowResult

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(transactionRowSelect).
		Joins("JOIN categories c ON c.id = t.category_id").
		Joins("LEFT JOIN accounts a ON a.id = t.account_id").
		Where("t.user_id = ?", userID).
		Order("t.date DESC, t.created_at DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	rows := make([]report.TransactionRow, len(results))
	for i, res := range results {
		rows[i] = res.toRow()
	}
	return rows, nil
}

// FindByDateRange returns the range's transactions ordered by date ascending.
func (r *reportRepository) FindByDateRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
) ([]report.TransactionRow, error) {
	var results []transactionRowResult

	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(transactionRowSelect).
		Joins("JOIN categories c ON c.id = t.category_id").
		Joins("LEFT JOIN accounts a ON a.id = t.account_id").
		Where("t.user_id = ? AND t.date >= ? AND t.date < ?", userID, from, to).
		Order("t.date ASC, t.created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for range: %w", err)
	}

	rows := make([]report.TransactionRow, len(results))
	for i, res := range results {
		rows[i] = res.toRow()
	}
	return rows, nil
}
