package impl

import (
	"context"
	"testing"
	"time"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	mockRepo "fooddash/internal/mocks/repository"
	mockSvc "fooddash/internal/mocks/service"
	"fooddash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type foodListingServiceFixtures struct {
	service     usecase.FoodListingUsecase
	txManager   *mockRepo.MockTransactionManager
	listingRepo *mockRepo.MockFoodListingRepository
	claimRepo   *mockRepo.MockClaimRepository
	clock       *mockSvc.MockClock
}

func createTestFoodListingService(t *testing.T) foodListingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	listingRepo := mockRepo.NewMockFoodListingRepository(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)
	clock := newFixedClock(t, time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC))

	service := NewFoodListingService(FoodListingServiceParams{
		TxManager:   txManager,
		ListingRepo: listingRepo,
		ClaimRepo:   claimRepo,
		Clock:       clock,
		Logger:      newDiscardLogger(),
	})

	return foodListingServiceFixtures{
		service:     service,
		txManager:   txManager,
		listingRepo: listingRepo,
		claimRepo:   claimRepo,
		clock:       clock,
	}
}

func (fx foodListingServiceFixtures) withTxListingRepo(t *testing.T) *mockRepo.MockFoodListingRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockFoodListingRepository(t)
	factory.EXPECT().NewFoodListingRepository().Return(txRepo)
	expectTx(fx.txManager, factory)

	return txRepo
}

func TestFoodListingService_CreateFoodListing_ParsesExpiry(t *testing.T) {
	fx := createTestFoodListingService(t)
	txRepo := fx.withTxListingRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodListing")).
		Run(func(_ context.Context, listing *entity.FoodListing) {
			listing.ID = 21
		}).
		Return(nil)

	listing, err := fx.service.CreateFoodListing(ctx, &usecase.FoodListingInput{
		FoodName:     "Bread",
		Quantity:     12,
		ExpiryDate:   "2024-03-10",
		ProviderID:   1,
		ProviderType: entity.ProviderTypeSupermarket,
		Location:     "Springfield",
		FoodType:     entity.FoodTypeVegan,
		MealType:     entity.MealTypeBreakfast,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), listing.ID)
	assert.Equal(t, day(2024, time.March, 10), listing.ExpiryDate)
	assert.Equal(t, 12, listing.Quantity)
}

func TestFoodListingService_CreateFoodListing_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.FoodListingInput
	}{
		{name: "blank food name", input: usecase.FoodListingInput{FoodName: " ", Quantity: 1}},
		{name: "malformed expiry", input: usecase.FoodListingInput{FoodName: "Rice", Quantity: 1, ExpiryDate: "10/03/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFoodListingService(t)

			listing, err := fx.service.CreateFoodListing(context.Background(), &tt.input)
			assert.Nil(t, listing)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestFoodListingService_CreateFoodListing_QuantityRejectedByStore(t *testing.T) {
	fx := createTestFoodListingService(t)
	txRepo := fx.withTxListingRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodListing")).
		Return(domainerrors.ErrConstraintViolated.WithDetails("chk_food_data_quantity"))

	listing, err := fx.service.CreateFoodListing(ctx, &usecase.FoodListingInput{FoodName: "Soup", Quantity: 0})
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrConstraintViolated)
}

func TestFoodListingService_UpdateFoodListing_ClearsExpiry(t *testing.T) {
	fx := createTestFoodListingService(t)
	txRepo := fx.withTxListingRepo(t)

	ctx := context.Background()
	var written *entity.FoodListing
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.FoodListing")).
		Run(func(_ context.Context, listing *entity.FoodListing) {
			written = listing
		}).
		Return(nil)

	_, err := fx.service.UpdateFoodListing(ctx, 4, &usecase.FoodListingInput{FoodName: "Soup", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), written.ID)
	assert.True(t, written.ExpiryDate.IsZero())
	assert.Empty(t, written.Location)
}

func TestFoodListingService_BrowseListings_NormalizesFilter(t *testing.T) {
	fx := createTestFoodListingService(t)

	ctx := context.Background()
	in := filter.Filter{City: "Springfield", ProviderType: "", FoodType: "all", From: day(2024, time.January, 1), To: day(2024, time.June, 1)}
	want := filter.Filter{City: "Springfield", ProviderType: filter.All, FoodType: filter.All, From: in.From, To: in.To}

	listings := []*entity.FoodListing{{ID: 1, Location: "Springfield"}}
	fx.listingRepo.EXPECT().FindByScope(ctx, want).Return(listings, nil)

	got, err := fx.service.BrowseListings(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, listings, got)
}

func TestFoodListingService_GetWastageStatus(t *testing.T) {
	completedBeforeExpiry := time.Date(2024, time.February, 28, 18, 0, 0, 0, time.UTC)
	completedAfterExpiry := time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiry     time.Time
		completed  *time.Time
		wantWasted bool
	}{
		{name: "expired and never completed", expiry: day(2024, time.March, 10), wantWasted: true},
		{name: "completed before expiry", expiry: day(2024, time.March, 10), completed: &completedBeforeExpiry},
		{name: "completed after expiry", expiry: day(2024, time.March, 10), completed: &completedAfterExpiry, wantWasted: true},
		{name: "expires today", expiry: day(2024, time.June, 1)},
		{name: "no expiry date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFoodListingService(t)
			ctx := context.Background()

			fx.listingRepo.EXPECT().
				FindByID(ctx, int64(8)).
				Return(&entity.FoodListing{ID: 8, Quantity: 5, ExpiryDate: tt.expiry}, nil)
			fx.claimRepo.EXPECT().
				FirstCompletedAt(ctx, int64(8)).
				Return(tt.completed, nil)

			status, err := fx.service.GetWastageStatus(ctx, 8)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWasted, status.Wasted)
			assert.Equal(t, day(2024, time.June, 1), status.EvaluatedOn)
			if tt.wantWasted {
				assert.Equal(t, 5, status.QuantityWasted)
			} else {
				assert.Zero(t, status.QuantityWasted)
			}
		})
	}
}

func TestFoodListingService_GetWastageStatus_NotFound(t *testing.T) {
	fx := createTestFoodListingService(t)

	ctx := context.Background()
	fx.listingRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, domainerrors.ErrFoodListingNotFound)

	status, err := fx.service.GetWastageStatus(ctx, 404)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrFoodListingNotFound)
}
