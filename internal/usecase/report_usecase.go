package usecase

import (
	"context"

	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
)

// ReportUsecase runs catalog reports
type ReportUsecase interface {
	// ListReports describes every catalog report in display order
	ListReports() []report.Descriptor

	// RunReport runs one report; a failing query is returned as an error
	RunReport(ctx context.Context, slug string, f filter.Filter) (*report.Result, error)

	// RunBatch runs several reports; each failure is recorded on its own result
	RunBatch(ctx context.Context, slugs []string, f filter.Filter) []*report.Result
}
