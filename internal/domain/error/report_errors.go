// Package error defines domain-specific errors for the household ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrExportFailed is returned when report file generation fails.
	ErrExportFailed = errors.New("failed to export report")

	// ErrInvalidExportFormat is returned when an unsupported export format is requested.
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// ReportErrorCode defines error codes for reporting errors.
type ReportErrorCode string

const (
	ErrCodeExportFailed        ReportErrorCode = "RPT-010001"
	ErrCodeInvalidExportFormat ReportErrorCode = "RPT-010002"
)

// ReportError represents a reporting error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
