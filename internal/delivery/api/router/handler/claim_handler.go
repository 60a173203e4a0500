package handler

import (
	"net/http"
	"time"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/domain/entity"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ClaimHandler holds dependencies for claim CRUD handlers
type ClaimHandler struct {
	claimUC usecase.ClaimUsecase
}

func NewClaimHandler(claimUC usecase.ClaimUsecase) *ClaimHandler {
	return &ClaimHandler{claimUC: claimUC}
}

// ClaimRequest is the body of create and update. An omitted timestamp means "now" on create.
type ClaimRequest struct {
	FoodID     int64     `json:"food_id"`
	ReceiverID int64     `json:"receiver_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

func (r *ClaimRequest) toInput() *usecase.ClaimInput {
	return &usecase.ClaimInput{
		FoodID:     r.FoodID,
		ReceiverID: r.ReceiverID,
		Status:     entity.ClaimStatus(r.Status),
		Timestamp:  r.Timestamp,
	}
}

func (h *ClaimHandler) CreateClaim(c echo.Context) error {
	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "claim")
	}

	claim, err := h.claimUC.CreateClaim(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, claim)
}

func (h *ClaimHandler) ListClaims(c echo.Context) error {
	claims, err := h.claimUC.ListClaims(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, claims)
}

func (h *ClaimHandler) GetClaim(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "claim")
	}

	claim, err := h.claimUC.GetClaim(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, claim)
}

func (h *ClaimHandler) UpdateClaim(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "claim")
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "claim")
	}

	claim, err := h.claimUC.UpdateClaim(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, claim)
}

func (h *ClaimHandler) DeleteClaim(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "claim")
	}

	if err := h.claimUC.DeleteClaim(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Claim deleted successfully"})
}
