package services

import (
	"context"

	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
)

// ReportSvcFacade is the report export pipeline: fetch data, resolve the
// opening balance, aggregate, render in the requested format, persist the
// artifact and return its URL (or the raw aggregate when no format is
// requested).
type ReportSvcFacade interface {
	// GenerateSummaryReport produces the summary report for a shop scope and
	// date window.
	GenerateSummaryReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error)

	// GenerateDailyStatement produces the daily-statement variant with the
	// explicit opening-balance row and per-row running balances.
	GenerateDailyStatement(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error)
}
