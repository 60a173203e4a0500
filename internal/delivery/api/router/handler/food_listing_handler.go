package handler

import (
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/delivery/api/validator"
	"fooddash/internal/domain/entity"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodListingHandlerParams holds dependencies for FoodListingHandler, injected by Fx.
type FoodListingHandlerParams struct {
	fx.In

	FoodListingUC usecase.FoodListingUsecase
	FilterBinder  *FilterBinder
}

// FoodListingHandler serves listing CRUD, the filtered listing browser and per-listing wastage.
type FoodListingHandler struct {
	listingUC usecase.FoodListingUsecase
	filters   *FilterBinder
}

func NewFoodListingHandler(params FoodListingHandlerParams) *FoodListingHandler {
	return &FoodListingHandler{
		listingUC: params.FoodListingUC,
		filters:   params.FilterBinder,
	}
}

// FoodListingRequest is the body of create and update. Quantity is checked by the store.
type FoodListingRequest struct {
	FoodName     string `json:"food_name"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	ProviderID   int64  `json:"provider_id"`
	ProviderType string `json:"provider_type"`
	Location     string `json:"location"`
	FoodType     string `json:"food_type"`
	MealType     string `json:"meal_type"`
}

func (r *FoodListingRequest) toInput() *usecase.FoodListingInput {
	return &usecase.FoodListingInput{
		FoodName:     r.FoodName,
		Quantity:     r.Quantity,
		ExpiryDate:   r.ExpiryDate,
		ProviderID:   r.ProviderID,
		ProviderType: entity.ProviderType(r.ProviderType),
		Location:     r.Location,
		FoodType:     entity.FoodType(r.FoodType),
		MealType:     entity.MealType(r.MealType),
	}
}

// CreateFoodListing handles POST /api/v1/food-listings
func (h *FoodListingHandler) CreateFoodListing(c echo.Context) error {
	var req FoodListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "food listing")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	listing, err := h.listingUC.CreateFoodListing(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, listing)
}

// ListFoodListings handles GET /api/v1/food-listings
func (h *FoodListingHandler) ListFoodListings(c echo.Context) error {
	listings, err := h.listingUC.ListFoodListings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings)
}

func (h *FoodListingHandler) GetFoodListing(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "food listing")
	}

	listing, err := h.listingUC.GetFoodListing(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

func (h *FoodListingHandler) UpdateFoodListing(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "food listing")
	}

	var req FoodListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "food listing")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	listing, err := h.listingUC.UpdateFoodListing(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

func (h *FoodListingHandler) DeleteFoodListing(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "food listing")
	}

	if err := h.listingUC.DeleteFoodListing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Food listing deleted successfully"})
}

// BrowseListings handles GET /api/v1/listings, the filtered view ordered by expiry.
func (h *FoodListingHandler) BrowseListings(c echo.Context) error {
	f, err := h.filters.Bind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	listings, err := h.listingUC.BrowseListings(c.Request().Context(), f)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Filtered(c, f, listings)
}

// GetWastageStatus handles GET /api/v1/listings/:id/wastage
func (h *FoodListingHandler) GetWastageStatus(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "food listing")
	}

	status, err := h.listingUC.GetWastageStatus(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
