package postgres

import (
	"context"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// statsRepository computes the dashboard scalars on the read replica when one is configured.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func (repo *statsRepository) CountProviders(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.reader(ctx).Model(&model.ProviderModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count providers")
	}

	return count, nil
}

func (repo *statsRepository) CountReceivers(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.reader(ctx).Model(&model.ReceiverModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count receivers")
	}

	return count, nil
}

func (repo *statsRepository) availableQuantity(ctx context.Context, f filter.Filter) *gorm.DB {
	return repo.reader(ctx).
		Table("food_data AS f").
		Select("COALESCE(SUM(f.quantity), 0)").
		Where(whereExpr(f.Scope()))
}

// SumAvailableQuantity returns zero rather than NULL when no listing is in scope.
func (repo *statsRepository) SumAvailableQuantity(ctx context.Context, f filter.Filter) (int64, error) {
	var total int64
	if err := repo.availableQuantity(ctx, f).Scan(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to sum available quantity")
	}

	return total, nil
}

func (repo *statsRepository) CountClaimsInWindow(ctx context.Context, f filter.Filter) (int64, error) {
	var count int64
	if err := repo.reader(ctx).
		Table("claim_data AS c").
		Where(whereExpr(f.Window())).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count claims in window")
	}

	return count, nil
}
