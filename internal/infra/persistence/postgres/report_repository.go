package postgres

import (
	"context"
	"database/sql"
	"time"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	"fooddash/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reportRepository executes catalog reports with the PostgreSQL query builder.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Run renders the report for the filter and scans the rows in column order.
func (repo *reportRepository) Run(ctx context.Context, r report.Report, f filter.Filter, today time.Time) (*report.Table, error) {
	slug := r.Describe().Slug

	q, err := r.Accept(newReportQueryBuilder(f, today))
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(slug + ": " + err.Error())
	}

	rows, err := reportStatement(repo.db.WithContext(withReportSlug(ctx, slug)).Clauses(dbresolver.Read), q).Rows()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to run report "+slug)
	}
	defer rows.Close()

	table, err := scanTable(rows)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read report "+slug)
	}

	return table, nil
}

func scanTable(rows *sql.Rows) (*report.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := report.NewTable(columns)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		for i, v := range values {
			values[i] = normalizeCell(v)
		}
		table.Rows = append(table.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// normalizeCell turns driver values into JSON-friendly ones. Dates become YYYY-MM-DD.
func normalizeCell(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(filter.DateLayout)
		}

		return val.Format(time.RFC3339)
	case int32:
		return int64(val)
	case float32:
		return float64(val)
	default:
		return v
	}
}
