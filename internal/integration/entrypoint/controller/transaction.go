package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/ledger"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/report"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/dto"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// TransactionController handles transaction and report endpoints.
type TransactionController struct {
	createUseCase  *ledger.CreateTransactionUseCase
	updateUseCase  *ledger.UpdateTransactionUseCase
	deleteUseCase  *ledger.DeleteTransactionUseCase
	monthlyUseCase *report.MonthlySummaryUseCase
	dailyUseCase   *report.DailySummaryUseCase
	recentUseCase  *report.RecentTransactionsUseCase
	searchUseCase  *report.SearchTransactionsUseCase
	exportUseCase  *report.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *ledger.CreateTransactionUseCase,
	updateUseCase *ledger.UpdateTransactionUseCase,
	deleteUseCase *ledger.DeleteTransactionUseCase,
	monthlyUseCase *report.MonthlySummaryUseCase,
	dailyUseCase *report.DailySummaryUseCase,
	recentUseCase *report.RecentTransactionsUseCase,
	searchUseCase *report.SearchTransactionsUseCase,
	exportUseCase *report.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		monthlyUseCase: monthlyUseCase,
		dailyUseCase:   dailyUseCase,
		recentUseCase:  recentUseCase,
		searchUseCase:  searchUseCase,
		exportUseCase:  exportUseCase,
	}
}

// parseOptionalAccountID turns an optional request field into an account ID.
func parseOptionalAccountID(raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
		return
	}
	accountID, ok := parseOptionalAccountID(req.AccountID)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateTransactionInput{
		UserID:      userID,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Type:        entity.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid category ID"})
		return
	}
	accountID, ok := parseOptionalAccountID(req.AccountID)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid account ID"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		CategoryID:    categoryID,
		AccountID:     accountID,
		Type:          entity.TransactionType(req.Type),
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: output.Success})
}

// parseYearMonth reads year/month query parameters, defaulting to the
// current month.
func parseYearMonth(ctx *gin.Context) (int, time.Month, bool) {
	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if rawYear := ctx.Query("year"); rawYear != "" {
		y, err := strconv.Atoi(rawYear)
		if err != nil || y < 1970 || y > 9999 {
			return 0, 0, false
		}
		year = y
	}
	if rawMonth := ctx.Query("month"); rawMonth != "" {
		m, err := strconv.Atoi(rawMonth)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}

// MonthlySummary handles GET /transactions/summary/monthly requests.
func (c *TransactionController) MonthlySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year or month"})
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlySummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(output))
}

// DailySummary handles GET /transactions/summary/daily requests.
func (c *TransactionController) DailySummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year or month"})
		return
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.DailySummaryInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(output))
}

// List handles GET /transactions requests. Without from/to query
// parameters the listing covers the current month.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var from, to time.Time
	if rawFrom, rawTo := ctx.Query("from"), ctx.Query("to"); rawFrom != "" || rawTo != "" {
		var err error
		from, err = time.Parse(dateLayout, rawFrom)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		to, err = time.Parse(dateLayout, rawTo)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		// The range is half-open, so include the requested end day.
		to = to.AddDate(0, 0, 1)
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), report.SearchTransactionsInput{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Recent handles GET /transactions/recent requests.
func (c *TransactionController) Recent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limit := 0
	if rawLimit := ctx.Query("limit"); rawLimit != "" {
		l, err := strconv.Atoi(rawLimit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = l
	}

	output, err := c.recentUseCase.Execute(ctx.Request.Context(), report.RecentTransactionsInput{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecentTransactionsResponse(output))
}

// Export handles GET /transactions/export requests. The generated file
// is streamed as an attachment.
func (c *TransactionController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	year, month, ok := parseYearMonth(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year or month"})
		return
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	format := ctx.DefaultQuery("format", string(report.ExportFormatCSV))

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportTransactionsInput{
		UserID: userID,
		From:   from,
		To:     to,
		Format: report.ExportFormat(format),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}
