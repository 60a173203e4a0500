package main

import (
	"context"
	"log/slog"
	"os"

	"fooddash/config"
	"fooddash/internal/delivery"
	"fooddash/internal/delivery/api"
	"fooddash/internal/delivery/api/router/handler"
	"fooddash/internal/infra/clock"
	logs "fooddash/internal/infra/log"
	"fooddash/internal/infra/persistence/postgres"
	"fooddash/internal/infra/telemetry"
	"fooddash/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		clock.New,
		telemetry.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProviderRepository,
			postgres.NewReceiverRepository,
			postgres.NewFoodListingRepository,
			postgres.NewClaimRepository,
			postgres.NewStatsRepository,
			postgres.NewReportRepository,
			postgres.NewDirectoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProviderService,
			impl.NewReceiverService,
			impl.NewFoodListingService,
			impl.NewClaimService,
			impl.NewDashboardService,
			impl.NewReportService,
			impl.NewDirectoryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFilterBinder,
			handler.NewDashboardHandler,
			handler.NewReportHandler,
			handler.NewDirectoryHandler,
			handler.NewProviderHandler,
			handler.NewReceiverHandler,
			handler.NewFoodListingHandler,
			handler.NewClaimHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
