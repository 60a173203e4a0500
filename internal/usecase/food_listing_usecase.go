package usecase

import (
	"context"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
)

// FoodListingInput carries every mutable listing field. ExpiryDate is YYYY-MM-DD; empty means no expiry.
type FoodListingInput struct {
	FoodName     string              `json:"food_name"`
	Quantity     int                 `json:"quantity"`
	ExpiryDate   string              `json:"expiry_date"`
	ProviderID   int64               `json:"provider_id"`
	ProviderType entity.ProviderType `json:"provider_type"`
	Location     string              `json:"location"`
	FoodType     entity.FoodType     `json:"food_type"`
	MealType     entity.MealType     `json:"meal_type"`
}

// FoodListingUsecase defines listing CRUD plus the filtered browse and wastage lookups
type FoodListingUsecase interface {
	CreateFoodListing(ctx context.Context, input *FoodListingInput) (*entity.FoodListing, error)
	GetFoodListing(ctx context.Context, id int64) (*entity.FoodListing, error)
	ListFoodListings(ctx context.Context) ([]*entity.FoodListing, error)
	UpdateFoodListing(ctx context.Context, id int64, input *FoodListingInput) (*entity.FoodListing, error)
	DeleteFoodListing(ctx context.Context, id int64) error

	// BrowseListings returns the listings in the filter's scope, soonest expiry first
	BrowseListings(ctx context.Context, f filter.Filter) ([]*entity.FoodListing, error)

	// GetWastageStatus classifies one listing as wasted or not as of today
	GetWastageStatus(ctx context.Context, id int64) (*entity.WastageStatus, error)
}
