package handler

import (
	"log/slog"
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/domain/entity"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler holds dependencies for provider CRUD handlers
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// ProviderRequest is the body of create and update. Update writes every field, including empty ones.
type ProviderRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Address string `json:"address"`
	City    string `json:"city"`
}

func (r *ProviderRequest) toInput() *usecase.ProviderInput {
	return &usecase.ProviderInput{
		Name:    r.Name,
		Type:    entity.ProviderType(r.Type),
		Contact: r.Contact,
		Address: r.Address,
		City:    r.City,
	}
}

// CreateProvider handles POST /api/v1/providers
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "provider")
	}

	provider, err := h.providerUC.CreateProvider(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, provider)
}

// ListProviders handles GET /api/v1/providers
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	providers, err := h.providerUC.ListProviders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers)
}

// GetProvider handles GET /api/v1/providers/:id
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "provider")
	}

	provider, err := h.providerUC.GetProvider(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// UpdateProvider handles PUT /api/v1/providers/:id
func (h *ProviderHandler) UpdateProvider(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "provider")
	}

	var req ProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "provider")
	}

	provider, err := h.providerUC.UpdateProvider(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, provider)
}

// DeleteProvider handles DELETE /api/v1/providers/:id
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "provider")
	}

	if err := h.providerUC.DeleteProvider(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Provider deleted successfully"})
}
