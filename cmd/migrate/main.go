// Command migrate creates the provider, receiver, food listing and claim tables, then exits.
package main

import (
	"context"
	"log/slog"

	"fooddash/config"
	logs "fooddash/internal/infra/log"
	"fooddash/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	DB         *gorm.DB
	Logger     *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
		fx.NopLogger,
	).Run()
}

// migrate runs after the database hook has pinged the server.
func migrate(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(params.DB.WithContext(ctx)); err != nil {
				return err
			}
			params.Logger.Info("Migration finished")

			return params.Shutdowner.Shutdown()
		},
	})
}
