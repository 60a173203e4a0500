package handler

import (
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/delivery/api/validator"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC     usecase.ReportUsecase
	FilterBinder *FilterBinder
}

// ReportHandler exposes the report catalog.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	filters  *FilterBinder
}

func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		filters:  params.FilterBinder,
	}
}

// BatchRequest names the reports to run together. The filter comes from the query string.
type BatchRequest struct {
	Slugs []string `json:"slugs" validate:"required,min=1,max=20,dive,required"`
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.reportUC.ListReports())
}

// RunReport handles GET /api/v1/reports/:slug
func (h *ReportHandler) RunReport(c echo.Context) error {
	f, err := h.filters.Bind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.reportUC.RunReport(c.Request().Context(), c.Param("slug"), f)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Filtered(c, f, result)
}

// RunBatch handles POST /api/v1/reports/batch. It succeeds even when some reports fail.
func (h *ReportHandler) RunBatch(c echo.Context) error {
	f, err := h.filters.Bind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "batch")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Describe(err))
	}

	return response.Filtered(c, f, h.reportUC.RunBatch(c.Request().Context(), req.Slugs, f))
}
