package impl

import (
	"context"
	"time"

	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	"fooddash/internal/domain/repository"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "fooddash/usecase"

// reportRunner runs one report inside its own span and packages the outcome.
type reportRunner struct {
	repo   repository.ReportRepository
	tracer trace.Tracer
}

func newReportRunner(repo repository.ReportRepository, tp trace.TracerProvider) reportRunner {
	return reportRunner{repo: repo, tracer: tp.Tracer(tracerName)}
}

// run returns a result in every case. On failure the result carries the message and the error is returned too.
func (rr reportRunner) run(ctx context.Context, r report.Report, f filter.Filter, today time.Time) (*report.Result, error) {
	d := r.Describe()

	ctx, span := rr.tracer.Start(ctx, "report.run", trace.WithAttributes(
		attribute.String("report.slug", d.Slug),
		attribute.String("filter.city", f.City),
		attribute.String("filter.provider_type", f.ProviderType),
		attribute.String("filter.food_type", f.FoodType),
	))
	defer span.End()

	result := &report.Result{Report: d, Filter: f}

	table, err := rr.repo.Run(ctx, r, f, today)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "report failed")
		result.Error = err.Error()

		return result, err
	}

	span.SetAttributes(attribute.Int("report.rows", len(table.Rows)))
	result.Table = table
	result.Empty = table.Empty()

	return result, nil
}
