package impl

import (
	"context"
	"log/slog"

	"fooddash/config"
	deliverycontext "fooddash/internal/delivery/context"
	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	"fooddash/internal/domain/repository"
	"fooddash/internal/domain/service"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const defaultTopN = 10

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StatsRepo      repository.StatsRepository
	ReportRepo     repository.ReportRepository
	Clock          service.Clock
	TracerProvider trace.TracerProvider
	Config         *config.Config
	Logger         *slog.Logger
}

type dashboardService struct {
	statsRepo repository.StatsRepository
	runner    reportRunner
	clock     service.Clock
	topN      int
	logger    *slog.Logger
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	topN := defaultTopN
	if params.Config != nil && params.Config.Dashboard != nil && params.Config.Dashboard.TopN > 0 {
		topN = params.Config.Dashboard.TopN
	}

	return &dashboardService{
		statsRepo: params.StatsRepo,
		runner:    newReportRunner(params.ReportRepo, params.TracerProvider),
		clock:     params.Clock,
		topN:      topN,
		logger:    params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *dashboardService) DefaultFilter() filter.Filter {
	return filter.Default(srv.clock.Today())
}

// GetKPIs computes the four scalars in order. Providers and receivers are never filtered.
func (srv *dashboardService) GetKPIs(ctx context.Context, f filter.Filter) (*entity.KPISummary, error) {
	f = f.Normalize()

	providers, err := srv.statsRepo.CountProviders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count providers")
	}

	receivers, err := srv.statsRepo.CountReceivers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count receivers")
	}

	quantity, err := srv.statsRepo.SumAvailableQuantity(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum available quantity")
	}

	claims, err := srv.statsRepo.CountClaimsInWindow(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count claims in window")
	}

	return &entity.KPISummary{
		TotalProviders:    providers,
		TotalReceivers:    receivers,
		AvailableQuantity: quantity,
		ClaimsInWindow:    claims,
		From:              f.From,
		To:                f.To,
	}, nil
}

// GetOverview runs the four panels. A failing panel keeps its error and does not fail the others.
func (srv *dashboardService) GetOverview(ctx context.Context, f filter.Filter) (*usecase.Overview, error) {
	f = f.Normalize()
	today := srv.clock.Today()

	panel := func(r report.Report) *report.Result {
		result, err := srv.runner.run(ctx, r, f, today)
		if err != nil {
			srv.log(ctx).Warn("Dashboard panel failed", slog.String("slug", r.Describe().Slug), slog.Any("error", err))
		}

		return result
	}

	return &usecase.Overview{
		Filter:       f,
		TopProviders: panel(report.QuantityPerProvider{Limit: srv.topN}),
		DemandByCity: panel(report.DemandByCity{Limit: srv.topN}),
		MealTypes:    panel(report.ClaimsPerMealType{}),
		WastageTrend: panel(report.WastageTrend{}),
	}, nil
}
