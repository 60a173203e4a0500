package handler

import (
	"net/http"
	"testing"
	"time"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	mockUC "fooddash/internal/mocks/usecase"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProviderHandler_CreateProvider(t *testing.T) {
	providerUC := mockUC.NewMockProviderUsecase(t)
	h := NewProviderHandler(ProviderHandlerParams{ProviderUC: providerUC})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/providers",
		`{"name":"Green Grocer","type":"Grocery Store","contact":"555-0100","address":"1 Main St","city":"Springfield"}`)

	providerUC.EXPECT().
		CreateProvider(mock.Anything, &usecase.ProviderInput{
			Name:    "Green Grocer",
			Type:    entity.ProviderTypeGroceryStore,
			Contact: "555-0100",
			Address: "1 Main St",
			City:    "Springfield",
		}).
		Return(&entity.Provider{ID: 1, Name: "Green Grocer"}, nil)

	require.NoError(t, h.CreateProvider(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Provider
	decodeData(t, rec, &got)
	assert.Equal(t, int64(1), got.ID)
}

func TestProviderHandler_CreateProvider_ValidationFailed(t *testing.T) {
	providerUC := mockUC.NewMockProviderUsecase(t)
	h := NewProviderHandler(ProviderHandlerParams{ProviderUC: providerUC})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/providers", `{"name":"  "}`)

	providerUC.EXPECT().
		CreateProvider(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("name is required"))

	require.NoError(t, h.CreateProvider(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, "name is required", errInfo.Details)
}

func TestProviderHandler_DeleteProvider_Conflict(t *testing.T) {
	providerUC := mockUC.NewMockProviderUsecase(t)
	h := NewProviderHandler(ProviderHandlerParams{ProviderUC: providerUC})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodDelete, "/api/v1/providers/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	providerUC.EXPECT().
		DeleteProvider(mock.Anything, int64(1)).
		Return(errors.Wrap(domainerrors.ErrReferenceConflict, "failed to delete provider"))

	require.NoError(t, h.DeleteProvider(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "REFERENCE_CONFLICT", decodeError(t, rec).Code)
}

func TestProviderHandler_GetProvider_InvalidID(t *testing.T) {
	h := NewProviderHandler(ProviderHandlerParams{ProviderUC: mockUC.NewMockProviderUsecase(t)})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/providers/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	require.NoError(t, h.GetProvider(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)
}

func TestReceiverHandler_ListReceivers_StoreFailure(t *testing.T) {
	receiverUC := mockUC.NewMockReceiverUsecase(t)
	h := NewReceiverHandler(receiverUC)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/receivers", "")

	receiverUC.EXPECT().
		ListReceivers(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find receivers"))

	require.NoError(t, h.ListReceivers(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errInfo.Code)
	assert.Contains(t, errInfo.Details, "connection refused")
}

func TestReceiverHandler_UpdateReceiver_NotFound(t *testing.T) {
	receiverUC := mockUC.NewMockReceiverUsecase(t)
	h := NewReceiverHandler(receiverUC)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPut, "/api/v1/receivers/404", `{"name":"Jo","type":"Individual"}`)
	c.SetParamNames("id")
	c.SetParamValues("404")

	receiverUC.EXPECT().
		UpdateReceiver(mock.Anything, int64(404), &usecase.ReceiverInput{Name: "Jo", Type: entity.ReceiverTypeIndividual}).
		Return(nil, domainerrors.ErrReceiverNotFound)

	require.NoError(t, h.UpdateReceiver(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFoodListingHandler_CreateFoodListing_MalformedExpiry(t *testing.T) {
	h := NewFoodListingHandler(FoodListingHandlerParams{
		FoodListingUC: mockUC.NewMockFoodListingUsecase(t),
		FilterBinder:  newTestFilterBinder(t),
	})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/food-listings", `{"food_name":"Bread","quantity":2,"expiry_date":"March 1"}`)

	require.NoError(t, h.CreateFoodListing(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "expiry_date")
}

func TestFoodListingHandler_GetWastageStatus(t *testing.T) {
	listingUC := mockUC.NewMockFoodListingUsecase(t)
	h := NewFoodListingHandler(FoodListingHandlerParams{
		FoodListingUC: listingUC,
		FilterBinder:  newTestFilterBinder(t),
	})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/listings/8/wastage", "")
	c.SetParamNames("id")
	c.SetParamValues("8")

	listingUC.EXPECT().
		GetWastageStatus(mock.Anything, int64(8)).
		Return(&entity.WastageStatus{FoodID: 8, Wasted: true, QuantityWasted: 5}, nil)

	require.NoError(t, h.GetWastageStatus(c))

	var got entity.WastageStatus
	decodeData(t, rec, &got)
	assert.True(t, got.Wasted)
	assert.Equal(t, 5, got.QuantityWasted)
}

func TestClaimHandler_CreateClaim_OmittedTimestamp(t *testing.T) {
	claimUC := mockUC.NewMockClaimUsecase(t)
	h := NewClaimHandler(claimUC)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/claims", `{"food_id":1,"receiver_id":2,"status":"Pending"}`)

	claimUC.EXPECT().
		CreateClaim(mock.Anything, &usecase.ClaimInput{FoodID: 1, ReceiverID: 2, Status: entity.ClaimStatusPending}).
		Return(&entity.Claim{ID: 3, FoodID: 1, ReceiverID: 2, Status: entity.ClaimStatusPending, Timestamp: time.Now()}, nil)

	require.NoError(t, h.CreateClaim(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDirectoryHandler_ListProviderContacts(t *testing.T) {
	directoryUC := mockUC.NewMockDirectoryUsecase(t)
	h := NewDirectoryHandler(directoryUC)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/contacts/providers?city=Springfield", "")

	directoryUC.EXPECT().
		ListProviderContacts(mock.Anything, "Springfield").
		Return([]*entity.Contact{{Name: "Green Grocer", City: "Springfield"}}, nil)

	require.NoError(t, h.ListProviderContacts(c))

	var got []entity.Contact
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Green Grocer", got[0].Name)
}
