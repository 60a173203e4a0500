package handler

import (
	"net/http"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/domain/entity"
	"fooddash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReceiverHandler holds dependencies for receiver CRUD handlers
type ReceiverHandler struct {
	receiverUC usecase.ReceiverUsecase
}

func NewReceiverHandler(receiverUC usecase.ReceiverUsecase) *ReceiverHandler {
	return &ReceiverHandler{receiverUC: receiverUC}
}

type ReceiverRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	City    string `json:"city"`
}

func (r *ReceiverRequest) toInput() *usecase.ReceiverInput {
	return &usecase.ReceiverInput{
		Name:    r.Name,
		Type:    entity.ReceiverType(r.Type),
		Contact: r.Contact,
		City:    r.City,
	}
}

func (h *ReceiverHandler) CreateReceiver(c echo.Context) error {
	var req ReceiverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "receiver")
	}

	receiver, err := h.receiverUC.CreateReceiver(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, receiver)
}

func (h *ReceiverHandler) ListReceivers(c echo.Context) error {
	receivers, err := h.receiverUC.ListReceivers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receivers)
}

func (h *ReceiverHandler) GetReceiver(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "receiver")
	}

	receiver, err := h.receiverUC.GetReceiver(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receiver)
}

func (h *ReceiverHandler) UpdateReceiver(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "receiver")
	}

	var req ReceiverRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "receiver")
	}

	receiver, err := h.receiverUC.UpdateReceiver(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, receiver)
}

func (h *ReceiverHandler) DeleteReceiver(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.InvalidID(c, "receiver")
	}

	if err := h.receiverUC.DeleteReceiver(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Receiver deleted successfully"})
}
