package impl

import (
	"context"
	"testing"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	mockRepo "fooddash/internal/mocks/repository"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// providerServiceFixtures holds all test dependencies for provider service tests.
type providerServiceFixtures struct {
	service      usecase.ProviderUsecase
	txManager    *mockRepo.MockTransactionManager
	providerRepo *mockRepo.MockProviderRepository
}

func createTestProviderService(t *testing.T) providerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	providerRepo := mockRepo.NewMockProviderRepository(t)

	service := NewProviderService(ProviderServiceParams{
		TxManager:    txManager,
		ProviderRepo: providerRepo,
		Logger:       newDiscardLogger(),
	})

	return providerServiceFixtures{
		service:      service,
		txManager:    txManager,
		providerRepo: providerRepo,
	}
}

// withTxProviderRepo wires a transaction whose factory hands out txRepo.
func (fx providerServiceFixtures) withTxProviderRepo(t *testing.T) *mockRepo.MockProviderRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockProviderRepository(t)
	factory.EXPECT().NewProviderRepository().Return(txRepo)
	expectTx(fx.txManager, factory)

	return txRepo
}

func TestProviderService_CreateProvider_Success(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	input := &usecase.ProviderInput{
		Name:    "Green Grocer",
		Type:    entity.ProviderTypeGroceryStore,
		Contact: "555-0100",
		Address: "1 Main St",
		City:    "Springfield",
	}

	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Run(func(_ context.Context, provider *entity.Provider) {
			provider.ID = 7
		}).
		Return(nil)

	provider, err := fx.service.CreateProvider(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), provider.ID)
	assert.Equal(t, "Green Grocer", provider.Name)
	assert.Equal(t, entity.ProviderTypeGroceryStore, provider.Type)
	assert.Equal(t, "Springfield", provider.City)
}

func TestProviderService_CreateProvider_BlankNameNeverReachesStore(t *testing.T) {
	fx := createTestProviderService(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		provider, err := fx.service.CreateProvider(context.Background(), &usecase.ProviderInput{Name: name, City: "Springfield"})
		assert.Nil(t, provider)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestProviderService_CreateProvider_UnknownTypeAccepted(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Provider")).Return(nil)

	provider, err := fx.service.CreateProvider(ctx, &usecase.ProviderInput{Name: "Food Truck", Type: "Food Truck"})
	require.NoError(t, err)
	assert.False(t, provider.Type.IsKnown())
}

func TestProviderService_UpdateProvider_WritesEveryField(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	input := &usecase.ProviderInput{
		Name: "Renamed",
		Type: entity.ProviderTypeRestaurant,
		City: "Shelbyville",
	}

	var written *entity.Provider
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Provider")).
		Run(func(_ context.Context, provider *entity.Provider) {
			written = provider
		}).
		Return(nil)

	_, err := fx.service.UpdateProvider(ctx, 3, input)
	require.NoError(t, err)
	assert.Equal(t, &entity.Provider{
		ID:      3,
		Name:    "Renamed",
		Type:    entity.ProviderTypeRestaurant,
		Contact: "",
		Address: "",
		City:    "Shelbyville",
	}, written)
}

func TestProviderService_UpdateProvider_NotFound(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Provider")).
		Return(domainerrors.ErrProviderNotFound)

	provider, err := fx.service.UpdateProvider(ctx, 404, &usecase.ProviderInput{Name: "Ghost"})
	assert.Nil(t, provider)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotFound)
}

func TestProviderService_DeleteProvider_ReferencedByListings(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Delete(ctx, int64(1)).
		Return(domainerrors.ErrReferenceConflict.WithDetails("food_data_provider_id_fkey"))

	err := fx.service.DeleteProvider(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrReferenceConflict)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestProviderService_DeleteProvider_Success(t *testing.T) {
	fx := createTestProviderService(t)
	txRepo := fx.withTxProviderRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

	require.NoError(t, fx.service.DeleteProvider(ctx, 2))
}

func TestProviderService_ListProviders_StoreFailure(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find providers")
	fx.providerRepo.EXPECT().FindAll(ctx).Return(nil, storeErr)

	providers, err := fx.service.ListProviders(ctx)
	assert.Nil(t, providers)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "connection refused")
}

func TestProviderService_GetProvider(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	want := &entity.Provider{ID: 5, Name: "Bakery"}
	fx.providerRepo.EXPECT().FindByID(ctx, int64(5)).Return(want, nil)

	got, err := fx.service.GetProvider(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
