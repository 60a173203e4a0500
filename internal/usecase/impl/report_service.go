package impl

import (
	"context"
	"log/slog"

	deliverycontext "fooddash/internal/delivery/context"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	"fooddash/internal/domain/repository"
	"fooddash/internal/domain/service"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo     repository.ReportRepository
	Clock          service.Clock
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

type reportService struct {
	runner reportRunner
	clock  service.Clock
	logger *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		runner: newReportRunner(params.ReportRepo, params.TracerProvider),
		clock:  params.Clock,
		logger: params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) ListReports() []report.Descriptor {
	return report.Descriptors()
}

func (srv *reportService) RunReport(ctx context.Context, slug string, f filter.Filter) (*report.Result, error) {
	r, ok := report.Lookup(slug)
	if !ok {
		return nil, domainerrors.ErrReportNotFound.WithDetails(slug)
	}

	f = f.Normalize()
	result, err := srv.runner.run(ctx, r, f, srv.clock.Today())
	if err != nil {
		srv.log(ctx).Error("Report failed", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to run report %s", slug)
	}

	return result, nil
}

// RunBatch runs the reports one after another. Unknown slugs and failing queries
// are recorded on their own result; the remaining reports still run.
func (srv *reportService) RunBatch(ctx context.Context, slugs []string, f filter.Filter) []*report.Result {
	f = f.Normalize()
	today := srv.clock.Today()

	results := make([]*report.Result, 0, len(slugs))
	for _, slug := range slugs {
		r, ok := report.Lookup(slug)
		if !ok {
			results = append(results, &report.Result{
				Report: report.Descriptor{Slug: slug},
				Filter: f,
				Error:  domainerrors.ErrReportNotFound.WithDetails(slug).Error(),
			})

			continue
		}

		result, err := srv.runner.run(ctx, r, f, today)
		if err != nil {
			srv.log(ctx).Warn("Report failed in batch", slog.String("slug", slug), slog.Any("error", err))
		}
		results = append(results, result)
	}

	return results
}
