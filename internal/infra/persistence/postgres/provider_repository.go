package postgres

import (
	"context"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// Create inserts a provider and fills in its generated ID.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	providerM := fromProviderDomain(provider)
	providerM.ProviderID = 0

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(providerM).Error; err != nil {
		return translateWriteError(err, "failed to create provider")
	}

	provider.ID = providerM.ProviderID

	return nil
}

// FindByID retrieves a provider by its ID.
func (repo *providerRepository) FindByID(ctx context.Context, id int64) (*entity.Provider, error) {
	var providerM model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", id).
		First(&providerM).Error; err != nil {
		return nil, translateLookupError(err, domainerrors.ErrProviderNotFound, "failed to find provider by ID")
	}

	return toProviderDomain(&providerM), nil
}

// FindAll retrieves every provider, unfiltered.
func (repo *providerRepository) FindAll(ctx context.Context) ([]*entity.Provider, error) {
	var providerModels []*model.ProviderModel

	if err := repo.db.WithContext(ctx).
		Order("provider_id").
		Find(&providerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list providers")
	}

	providers := make([]*entity.Provider, 0, len(providerModels))
	for _, providerM := range providerModels {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// Update overwrites every mutable column. Empty strings are written as given.
func (repo *providerRepository) Update(ctx context.Context, provider *entity.Provider) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProviderModel{}).
		Where("provider_id = ?", provider.ID).
		Updates(map[string]any{
			"name":    provider.Name,
			"type":    provider.Type.String(),
			"contact": provider.Contact,
			"address": provider.Address,
			"city":    provider.City,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update provider")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProviderNotFound
	}

	return nil
}

// Delete removes a provider by primary key.
func (repo *providerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("provider_id = ?", id).
		Delete(&model.ProviderModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete provider")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProviderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:      data.ProviderID,
		Name:    data.Name,
		Type:    entity.ProviderType(data.Type),
		Contact: data.Contact,
		Address: data.Address,
		City:    data.City,
	}
}

func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ProviderID: data.ID,
		Name:       data.Name,
		Type:       data.Type.String(),
		Contact:    data.Contact,
		Address:    data.Address,
		City:       data.City,
	}
}
