package repository

import (
	"context"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
)

// FoodListingRepository defines the interface for food_data operations.
type FoodListingRepository interface {
	Create(ctx context.Context, listing *entity.FoodListing) error
	FindByID(ctx context.Context, id int64) (*entity.FoodListing, error)
	FindAll(ctx context.Context) ([]*entity.FoodListing, error)
	Update(ctx context.Context, listing *entity.FoodListing) error
	Delete(ctx context.Context, id int64) error

	// FindByScope retrieves the listings matching the filter's scope, ordered by expiry date with NULLs last.
	FindByScope(ctx context.Context, f filter.Filter) ([]*entity.FoodListing, error)
}
