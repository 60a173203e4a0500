package impl

import (
	"context"
	"testing"
	"time"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	mockRepo "fooddash/internal/mocks/repository"
	"fooddash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var claimNow = time.Date(2024, time.June, 1, 14, 5, 0, 0, time.UTC)

type claimServiceFixtures struct {
	service   usecase.ClaimUsecase
	txManager *mockRepo.MockTransactionManager
	claimRepo *mockRepo.MockClaimRepository
}

func createTestClaimService(t *testing.T) claimServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	claimRepo := mockRepo.NewMockClaimRepository(t)

	service := NewClaimService(ClaimServiceParams{
		TxManager: txManager,
		ClaimRepo: claimRepo,
		Clock:     newFixedClock(t, claimNow),
		Logger:    newDiscardLogger(),
	})

	return claimServiceFixtures{
		service:   service,
		txManager: txManager,
		claimRepo: claimRepo,
	}
}

func (fx claimServiceFixtures) withTxClaimRepo(t *testing.T) *mockRepo.MockClaimRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockClaimRepository(t)
	factory.EXPECT().NewClaimRepository().Return(txRepo)
	expectTx(fx.txManager, factory)

	return txRepo
}

func TestClaimService_CreateClaim_DefaultsTimestampToNow(t *testing.T) {
	fx := createTestClaimService(t)
	txRepo := fx.withTxClaimRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Claim")).Return(nil)

	claim, err := fx.service.CreateClaim(ctx, &usecase.ClaimInput{FoodID: 1, ReceiverID: 2, Status: entity.ClaimStatusPending})
	require.NoError(t, err)
	assert.Equal(t, claimNow, claim.Timestamp)
}

func TestClaimService_CreateClaim_KeepsGivenTimestamp(t *testing.T) {
	fx := createTestClaimService(t)
	txRepo := fx.withTxClaimRepo(t)

	ctx := context.Background()
	given := time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC)
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Claim")).Return(nil)

	claim, err := fx.service.CreateClaim(ctx, &usecase.ClaimInput{FoodID: 1, ReceiverID: 2, Status: entity.ClaimStatusCompleted, Timestamp: given})
	require.NoError(t, err)
	assert.Equal(t, given, claim.Timestamp)
}

func TestClaimService_CreateClaim_MissingListing(t *testing.T) {
	fx := createTestClaimService(t)
	txRepo := fx.withTxClaimRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Claim")).
		Return(domainerrors.ErrReferenceConflict.WithDetails("claim_data_food_id_fkey"))

	claim, err := fx.service.CreateClaim(ctx, &usecase.ClaimInput{FoodID: 999, ReceiverID: 2})
	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrReferenceConflict)
}

func TestClaimService_UpdateClaim_WritesTimestampAsGiven(t *testing.T) {
	fx := createTestClaimService(t)
	txRepo := fx.withTxClaimRepo(t)

	ctx := context.Background()
	var written *entity.Claim
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Claim")).
		Run(func(_ context.Context, claim *entity.Claim) {
			written = claim
		}).
		Return(nil)

	_, err := fx.service.UpdateClaim(ctx, 6, &usecase.ClaimInput{FoodID: 1, ReceiverID: 2, Status: entity.ClaimStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, int64(6), written.ID)
	assert.Equal(t, entity.ClaimStatusCancelled, written.Status)
	assert.True(t, written.Timestamp.IsZero())
}

func TestClaimService_DeleteClaim_NotFound(t *testing.T) {
	fx := createTestClaimService(t)
	txRepo := fx.withTxClaimRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().Delete(ctx, int64(3)).Return(domainerrors.ErrClaimNotFound)

	assert.ErrorIs(t, fx.service.DeleteClaim(ctx, 3), domainerrors.ErrClaimNotFound)
}

func TestClaimService_GetClaim(t *testing.T) {
	fx := createTestClaimService(t)

	ctx := context.Background()
	want := &entity.Claim{ID: 3, Status: entity.ClaimStatusCompleted}
	fx.claimRepo.EXPECT().FindByID(ctx, int64(3)).Return(want, nil)

	got, err := fx.service.GetClaim(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
