package dto

import (
	"time"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/report"
)

// CategoryShareResponse is one category's slice of a monthly total.
type CategoryShareResponse struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Amount       int64  `json:"amount"`
	Count        int    `json:"count"`
	Percentage   string `json:"percentage"`
}

func toCategoryShareResponses(shares []report.CategoryShare) []CategoryShareResponse {
	out := make([]CategoryShareResponse, len(shares))
	for i, s := range shares {
		out[i] = CategoryShareResponse{
			CategoryID:   s.CategoryID.String(),
			CategoryName: s.CategoryName,
			Amount:       s.Amount,
			Count:        s.Count,
			Percentage:   s.Percentage.String(),
		}
	}
	return out
}

// MonthlySummaryResponse is the body for GET /transactions/summary/monthly.
type MonthlySummaryResponse struct {
	Year         int                     `json:"year"`
	Month        int                     `json:"month"`
	TotalIncome  int64                   `json:"totalIncome"`
	TotalExpense int64                   `json:"totalExpense"`
	Net          int64                   `json:"net"`
	Income       []CategoryShareResponse `json:"income"`
	Expense      []CategoryShareResponse `json:"expense"`
}

// ToMonthlySummaryResponse converts a monthly summary output to a response body.
func ToMonthlySummaryResponse(output *report.MonthlySummaryOutput) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Year:         output.Year,
		Month:        int(output.Month),
		TotalIncome:  output.TotalIncome,
		TotalExpense: output.TotalExpense,
		Net:          output.Net,
		Income:       toCategoryShareResponses(output.Income),
		Expense:      toCategoryShareResponses(output.Expense),
	}
}

// DailyEntryResponse is one day's totals.
type DailyEntryResponse struct {
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Net     int64  `json:"net"`
}

// DailySummaryResponse is the body for GET /transactions/summary/daily.
type DailySummaryResponse struct {
	Year    int                  `json:"year"`
	Month   int                  `json:"month"`
	Income  int64                `json:"income"`
	Expense int64                `json:"expense"`
	Days    []DailyEntryResponse `json:"days"`
}

// ToDailySummaryResponse converts a daily summary output to a response body.
func ToDailySummaryResponse(output *report.DailySummaryOutput) DailySummaryResponse {
	days := make([]DailyEntryResponse, len(output.Days))
	for i, d := range output.Days {
		days[i] = DailyEntryResponse{
			Date:    d.Date.Format("2006-01-02"),
			Income:  d.Income,
			Expense: d.Expense,
			Net:     d.Net,
		}
	}
	return DailySummaryResponse{
		Year:    output.Year,
		Month:   int(output.Month),
		Income:  output.Income,
		Expense: output.Expense,
		Days:    days,
	}
}

// TransactionRowResponse is a denormalized transaction for listings.
type TransactionRowResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description"`
	Date         string    `json:"date"`
	CategoryName string    `json:"categoryName"`
	AccountName  string    `json:"accountName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toTransactionRowResponses(rows []report.TransactionRow) []TransactionRowResponse {
	out := make([]TransactionRowResponse, len(rows))
	for i, r := range rows {
		out[i] = TransactionRowResponse{
			ID:           r.ID.String(),
			Type:         string(r.Type),
			Amount:       r.Amount,
			Description:  r.Description,
			Date:         r.Date.Format("2006-01-02"),
			CategoryName: r.CategoryName,
			AccountName:  r.AccountName,
			CreatedAt:    r.CreatedAt,
		}
	}
	return out
}

// TransactionListResponse is the body for GET /transactions.
type TransactionListResponse struct {
	Transactions []TransactionRowResponse `json:"transactions"`
}

// ToTransactionListResponse converts a search output to a response body.
func ToTransactionListResponse(output *report.SearchTransactionsOutput) TransactionListResponse {
	return TransactionListResponse{Transactions: toTransactionRowResponses(output.Transactions)}
}

// RecentTransactionsResponse is the body for GET /transactions/recent.
type RecentTransactionsResponse struct {
	Transactions []TransactionRowResponse `json:"transactions"`
}

// ToRecentTransactionsResponse converts a recent listing output to a response body.
func ToRecentTransactionsResponse(output *report.RecentTransactionsOutput) RecentTransactionsResponse {
	return RecentTransactionsResponse{Transactions: toTransactionRowResponses(output.Transactions)}
}

// DashboardResponse is the body for GET /dashboard.
type DashboardResponse struct {
	TotalBalance int64                    `json:"totalBalance"`
	AccountCount int                      `json:"accountCount"`
	MonthIncome  int64                    `json:"monthIncome"`
	MonthExpense int64                    `json:"monthExpense"`
	MonthNet     int64                    `json:"monthNet"`
	Recent       []TransactionRowResponse `json:"recent"`
}

// ToDashboardResponse converts a dashboard output to a response body.
func ToDashboardResponse(output *report.DashboardOutput) DashboardResponse {
	return DashboardResponse{
		TotalBalance: output.TotalBalance,
		AccountCount: output.AccountCount,
		MonthIncome:  output.MonthIncome,
		MonthExpense: output.MonthExpense,
		MonthNet:     output.MonthNet,
		Recent:       toTransactionRowResponses(output.Recent),
	}
}
