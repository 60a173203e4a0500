package postgres

import (
	"context"
	"strings"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// directoryRepository serves contact lists and filter choices.
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository is the constructor for directoryRepository.
func NewDirectoryRepository(db *gorm.DB) repository.DirectoryRepository {
	return &directoryRepository{db: db}
}

func (repo *directoryRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

// FilterOptions loads the distinct, non-null, sorted values of each filter column.
func (repo *directoryRepository) FilterOptions(ctx context.Context) (*entity.FilterOptions, error) {
	opts := &entity.FilterOptions{Choices: entity.DefaultChoices()}

	lists := []struct {
		model  any
		column string
		dest   *[]string
	}{
		{model: &model.ProviderModel{}, column: "city", dest: &opts.Cities},
		{model: &model.FoodListingModel{}, column: "provider_type", dest: &opts.ProviderTypes},
		{model: &model.FoodListingModel{}, column: "food_type", dest: &opts.FoodTypes},
		{model: &model.ReceiverModel{}, column: "city", dest: &opts.ReceiverCities},
	}

	for _, l := range lists {
		values := []string{}
		if err := repo.reader(ctx).
			Model(l.model).
			Where(l.column + " IS NOT NULL").
			Distinct(l.column).
			Order(l.column).
			Pluck(l.column, &values).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load "+l.column+" options")
		}
		*l.dest = values
	}

	return opts, nil
}

func (repo *directoryRepository) ProviderContacts(ctx context.Context, city string) ([]*entity.Contact, error) {
	contacts := []*entity.Contact{}

	query := repo.reader(ctx).
		Model(&model.ProviderModel{}).
		Select("name, contact, address, city")
	if selected(city) {
		query = query.Where("city = ?", city)
	}

	if err := query.Order("name").Scan(&contacts).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list provider contacts")
	}

	return contacts, nil
}

func (repo *directoryRepository) ReceiverContacts(ctx context.Context, city string) ([]*entity.Contact, error) {
	contacts := []*entity.Contact{}

	query := repo.reader(ctx).
		Model(&model.ReceiverModel{}).
		Select("name, contact, city")
	if selected(city) {
		query = query.Where("city = ?", city)
	}

	if err := query.Order("name").Scan(&contacts).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list receiver contacts")
	}

	return contacts, nil
}

func selected(city string) bool {
	city = strings.TrimSpace(city)

	return city != "" && !strings.EqualFold(city, filter.All)
}
