package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// ExportFormat selects the file format of a transaction export.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// Export file layout. Header labels and type labels are Korean, matching
// the product's locale.
const (
	exportSheetName  = "거래내역"
	labelIncome      = "수입"
	labelExpense     = "지출"
	exportDateLayout = "2006-01-02"
)

var exportHeader = []string{"날짜", "유형", "카테고리", "금액", "메모"}

// utf8BOM makes spreadsheet applications detect the CSV as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportTransactionsInput represents the input for a transaction export.
// The range is half-open: From inclusive, To exclusive.
type ExportTransactionsInput struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Format ExportFormat
}

// ExportTransactionsOutput carries the generated file.
type ExportTransactionsOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportTransactionsUseCase handles transaction file exports.
type ExportTransactionsUseCase struct {
	repository Repository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(repository Repository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{repository: repository}
}

// Execute generates a CSV or XLSX file of the user's transactions in the
// range, ordered by date ascending.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	if input.Format != ExportFormatCSV && input.Format != ExportFormatXLSX {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidExportFormat,
			"export format must be 'csv' or 'xlsx'",
			domainerror.ErrInvalidExportFormat,
		)
	}

	rows, err := uc.repository.FindByDateRange(ctx, input.UserID, input.From, input.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102")
	switch input.Format {
	case ExportFormatCSV:
		content, err := renderCSV(rows)
		if err != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeExportFailed,
				"failed to generate csv file",
				domainerror.ErrExportFailed,
			)
		}
		return &ExportTransactionsOutput{
			FileName:    fmt.Sprintf("transactions_%s.csv", stamp),
			ContentType: "text/csv; charset=utf-8",
			Content:     content,
		}, nil

	default:
		content, err := renderXLSX(rows)
		if err != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeExportFailed,
				"failed to generate xlsx file",
				domainerror.ErrExportFailed,
			)
		}
		return &ExportTransactionsOutput{
			FileName:    fmt.Sprintf("transactions_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}, nil
	}
}

func typeLabel(transactionType entity.TransactionType) string {
	if transactionType == entity.TransactionTypeIncome {
		return labelIncome
	}
	return labelExpense
}

// renderCSV writes a BOM-prefixed UTF-8 CSV.
func renderCSV(rows []TransactionRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format(exportDateLayout),
			typeLabel(row.Type),
			row.CategoryName,
			strconv.FormatInt(row.Amount, 10),
			row.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderXLSX writes a single-sheet workbook with a bold header row.
func renderXLSX(rows []TransactionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	for i, label := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheetName, cell, label); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(exportSheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date.Format(exportDateLayout),
			typeLabel(row.Type),
			row.CategoryName,
			row.Amount,
			row.Description,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(exportSheetName, "A", "E", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
