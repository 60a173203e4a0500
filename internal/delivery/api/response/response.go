package response

import (
	"net/http"

	deliverycontext "fooddash/internal/delivery/context"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context
}

// MetaInfo represents response metadata. Filter is set on analytic responses only.
type MetaInfo struct {
	RequestID string      `json:"request_id"`
	Filter    *FilterInfo `json:"filter,omitempty"`
}

// FilterInfo echoes the filter a query ran with after defaults were applied.
type FilterInfo struct {
	City          string `json:"city"`
	ProviderType  string `json:"provider_type"`
	FoodType      string `json:"food_type"`
	From          string `json:"from"`
	To            string `json:"to"`
	InvertedRange bool   `json:"inverted_range,omitempty"`
}

func newFilterInfo(f filter.Filter) *FilterInfo {
	return &FilterInfo{
		City:          f.City,
		ProviderType:  f.ProviderType,
		FoodType:      f.FoodType,
		From:          f.From.Format(filter.DateLayout),
		To:            f.To.Format(filter.DateLayout),
		InvertedRange: f.InvertedRange(),
	}
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.RequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Filtered returns a 200 response for a query scoped by f, echoing f in meta.filter.
func Filtered(c echo.Context, f filter.Filter, data any) error {
	m := meta(c)
	m.Filter = newFilterInfo(f)

	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: m})
}

// Error returns an error response. Empty string details are omitted.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError is the 400 returned when a JSON body cannot be decoded.
func BindingError(c echo.Context, what string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid "+what+" input", nil)
}

// InvalidID is the 400 returned when the :id path parameter is not a positive integer.
func InvalidID(c echo.Context, entity string) error {
	return Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+entity+" ID", nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to their HTTP response.
// Store failures keep the underlying message in details so the operator can see what the database said.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
