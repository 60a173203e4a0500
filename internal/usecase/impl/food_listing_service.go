package impl

import (
	"context"
	"log/slog"

	deliverycontext "fooddash/internal/delivery/context"
	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/repository"
	"fooddash/internal/domain/service"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FoodListingServiceParams holds dependencies for FoodListingService, injected by Fx.
type FoodListingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ListingRepo repository.FoodListingRepository
	ClaimRepo   repository.ClaimRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

type foodListingService struct {
	txManager   repository.TransactionManager
	listingRepo repository.FoodListingRepository
	claimRepo   repository.ClaimRepository
	clock       service.Clock
	logger      *slog.Logger
}

// NewFoodListingService creates a new food listing service instance
func NewFoodListingService(params FoodListingServiceParams) usecase.FoodListingUsecase {
	return &foodListingService{
		txManager:   params.TxManager,
		listingRepo: params.ListingRepo,
		claimRepo:   params.ClaimRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *foodListingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *foodListingService) CreateFoodListing(ctx context.Context, input *usecase.FoodListingInput) (*entity.FoodListing, error) {
	listing, err := listingFromInput(0, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewFoodListingRepository().Create(ctx, listing)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create food listing")
	}

	srv.log(ctx).Info("Food listing created", slog.Int64("foodID", listing.ID), slog.Int64("providerID", listing.ProviderID))

	return listing, nil
}

func (srv *foodListingService) GetFoodListing(ctx context.Context, id int64) (*entity.FoodListing, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food listing")
	}

	return listing, nil
}

func (srv *foodListingService) ListFoodListings(ctx context.Context) ([]*entity.FoodListing, error) {
	listings, err := srv.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food listings")
	}

	return listings, nil
}

func (srv *foodListingService) UpdateFoodListing(ctx context.Context, id int64, input *usecase.FoodListingInput) (*entity.FoodListing, error) {
	listing, err := listingFromInput(id, input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewFoodListingRepository().Update(ctx, listing)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update food listing")
	}

	srv.log(ctx).Info("Food listing updated", slog.Int64("foodID", id))

	return listing, nil
}

func (srv *foodListingService) DeleteFoodListing(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewFoodListingRepository().Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete food listing")
	}

	srv.log(ctx).Info("Food listing deleted", slog.Int64("foodID", id))

	return nil
}

func (srv *foodListingService) BrowseListings(ctx context.Context, f filter.Filter) ([]*entity.FoodListing, error) {
	listings, err := srv.listingRepo.FindByScope(ctx, f.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse food listings")
	}

	return listings, nil
}

// GetWastageStatus applies the same rule as the wastage reports to a single listing.
func (srv *foodListingService) GetWastageStatus(ctx context.Context, id int64) (*entity.WastageStatus, error) {
	listing, err := srv.listingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get food listing")
	}

	firstCompletedAt, err := srv.claimRepo.FirstCompletedAt(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find first completed claim")
	}

	today := srv.clock.Today()
	status := &entity.WastageStatus{
		FoodID:           listing.ID,
		ExpiryDate:       listing.ExpiryDate,
		FirstCompletedAt: firstCompletedAt,
		EvaluatedOn:      today,
		Wasted:           listing.IsWasted(firstCompletedAt, today),
	}
	if status.Wasted {
		status.QuantityWasted = listing.Quantity
	}

	return status, nil
}

func listingFromInput(id int64, input *usecase.FoodListingInput) (*entity.FoodListing, error) {
	if err := requireText("food_name", input.FoodName); err != nil {
		return nil, err
	}

	expiry, err := parseDate("expiry_date", input.ExpiryDate)
	if err != nil {
		return nil, err
	}

	return &entity.FoodListing{
		ID:           id,
		FoodName:     input.FoodName,
		Quantity:     input.Quantity,
		ExpiryDate:   expiry,
		ProviderID:   input.ProviderID,
		ProviderType: input.ProviderType,
		Location:     input.Location,
		FoodType:     input.FoodType,
		MealType:     input.MealType,
	}, nil
}
