package postgres

import (
	"context"
	"time"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// foodListingRepository implements the repository.FoodListingRepository interface.
type foodListingRepository struct {
	db *gorm.DB
}

// NewFoodListingRepository is the constructor for foodListingRepository.
func NewFoodListingRepository(db *gorm.DB) repository.FoodListingRepository {
	return &foodListingRepository{db: db}
}

func (repo *foodListingRepository) Create(ctx context.Context, listing *entity.FoodListing) error {
	listingM := fromFoodListingDomain(listing)
	listingM.FoodID = 0

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(listingM).Error; err != nil {
		return translateWriteError(err, "failed to create food listing")
	}

	listing.ID = listingM.FoodID

	return nil
}

func (repo *foodListingRepository) FindByID(ctx context.Context, id int64) (*entity.FoodListing, error) {
	var listingM model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Where("food_id = ?", id).
		First(&listingM).Error; err != nil {
		return nil, translateLookupError(err, domainerrors.ErrFoodListingNotFound, "failed to find food listing by ID")
	}

	return toFoodListingDomain(&listingM), nil
}

func (repo *foodListingRepository) FindAll(ctx context.Context) ([]*entity.FoodListing, error) {
	var listingModels []*model.FoodListingModel

	if err := repo.db.WithContext(ctx).
		Order("food_id").
		Find(&listingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list food listings")
	}

	return toFoodListingsDomain(listingModels), nil
}

func (repo *foodListingRepository) scoped(ctx context.Context, f filter.Filter) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("food_data AS f").
		Select("f.*").
		Where(whereExpr(f.Scope())).
		Order("f.expiry_date NULLS LAST")
}

// FindByScope applies the filter's scope predicate to food_data aliased as f.
func (repo *foodListingRepository) FindByScope(ctx context.Context, f filter.Filter) ([]*entity.FoodListing, error) {
	var listingModels []*model.FoodListingModel
	if err := repo.scoped(ctx, f).Find(&listingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list filtered food listings")
	}

	return toFoodListingsDomain(listingModels), nil
}

// Update overwrites every mutable column, including the denormalized provider type.
func (repo *foodListingRepository) Update(ctx context.Context, listing *entity.FoodListing) error {
	listingM := fromFoodListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.FoodListingModel{}).
		Where("food_id = ?", listing.ID).
		Updates(map[string]any{
			"food_name":     listingM.FoodName,
			"quantity":      listingM.Quantity,
			"expiry_date":   listingM.ExpiryDate,
			"provider_id":   listingM.ProviderID,
			"provider_type": listingM.ProviderType,
			"location":      listingM.Location,
			"food_type":     listingM.FoodType,
			"meal_type":     listingM.MealType,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update food listing")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrFoodListingNotFound
	}

	return nil
}

func (repo *foodListingRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("food_id = ?", id).
		Delete(&model.FoodListingModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete food listing")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrFoodListingNotFound
	}

	return nil
}

func toFoodListingsDomain(listingModels []*model.FoodListingModel) []*entity.FoodListing {
	listings := make([]*entity.FoodListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toFoodListingDomain(listingM))
	}

	return listings
}

func toFoodListingDomain(data *model.FoodListingModel) *entity.FoodListing {
	if data == nil {
		return nil
	}

	var expiry time.Time
	if data.ExpiryDate != nil {
		expiry = entity.DateOf(*data.ExpiryDate)
	}

	return &entity.FoodListing{
		ID:           data.FoodID,
		FoodName:     data.FoodName,
		Quantity:     data.Quantity,
		ExpiryDate:   expiry,
		ProviderID:   data.ProviderID,
		ProviderType: entity.ProviderType(data.ProviderType),
		Location:     data.Location,
		FoodType:     entity.FoodType(data.FoodType),
		MealType:     entity.MealType(data.MealType),
	}
}

func fromFoodListingDomain(data *entity.FoodListing) *model.FoodListingModel {
	if data == nil {
		return nil
	}

	var expiry *time.Time
	if !data.ExpiryDate.IsZero() {
		d := entity.DateOf(data.ExpiryDate)
		expiry = &d
	}

	return &model.FoodListingModel{
		FoodID:       data.ID,
		FoodName:     data.FoodName,
		Quantity:     data.Quantity,
		ExpiryDate:   expiry,
		ProviderID:   data.ProviderID,
		ProviderType: data.ProviderType.String(),
		Location:     data.Location,
		FoodType:     string(data.FoodType),
		MealType:     data.MealType.String(),
	}
}
