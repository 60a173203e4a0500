// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return NewProviderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReceiverRepository() repository.ReceiverRepository {
	return NewReceiverRepository(f.tx)
}

func (f *gormRepositoryFactory) NewFoodListingRepository() repository.FoodListingRepository {
	return NewFoodListingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewClaimRepository() repository.ClaimRepository {
	return NewClaimRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then let the panic continue to the recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit transaction")
	}

	return nil
}
