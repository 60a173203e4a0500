package repository

import (
	"context"
	"time"

	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
)

// ReportRepository executes catalog reports.
type ReportRepository interface {
	// Run executes one report for the filter. today anchors the wastage rule.
	// An empty result is a table with no rows, not an error.
	Run(ctx context.Context, r report.Report, f filter.Filter, today time.Time) (*report.Table, error)
}
