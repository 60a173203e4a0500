package handler

import (
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DirectoryHandler serves the contact directory and the filter choices.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUC usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: directoryUC}
}

// GetFilterOptions handles GET /api/v1/filters/options
func (h *DirectoryHandler) GetFilterOptions(c echo.Context) error {
	opts, err := h.directoryUC.GetFilterOptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, opts)
}

// ListProviderContacts handles GET /api/v1/contacts/providers?city=
func (h *DirectoryHandler) ListProviderContacts(c echo.Context) error {
	contacts, err := h.directoryUC.ListProviderContacts(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// ListReceiverContacts handles GET /api/v1/contacts/receivers?city=
func (h *DirectoryHandler) ListReceiverContacts(c echo.Context) error {
	contacts, err := h.directoryUC.ListReceiverContacts(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}
