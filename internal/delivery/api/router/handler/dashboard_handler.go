package handler

import (
	"log/slog"
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC  usecase.DashboardUsecase
	FilterBinder *FilterBinder
	Logger       *slog.Logger
}

// DashboardHandler serves the KPI strip and the overview panels.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	filters     *FilterBinder
	logger      *slog.Logger
}

func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		filters:     params.FilterBinder,
		logger:      params.Logger,
	}
}

// GetKPIs handles GET /api/v1/dashboard/kpis
func (h *DashboardHandler) GetKPIs(c echo.Context) error {
	f, err := h.filters.Bind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	kpis, err := h.dashboardUC.GetKPIs(c.Request().Context(), f)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Filtered(c, f, kpis)
}

// GetOverview handles GET /api/v1/dashboard/overview. Failed panels are reported inside the payload.
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	f, err := h.filters.Bind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	overview, err := h.dashboardUC.GetOverview(c.Request().Context(), f)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Filtered(c, f, overview)
}

// GetDefaultFilter handles GET /api/v1/filters/default
func (h *DashboardHandler) GetDefaultFilter(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dashboardUC.DefaultFilter())
}
