package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddash/internal/delivery/api/response"
	"fooddash/internal/delivery/api/validator"
	mockSvc "fooddash/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var handlerToday = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestFilterBinder(t *testing.T) *FilterBinder {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Today().Return(handlerToday).Maybe()

	return NewFilterBinder(clock)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	var body struct {
		Data json.RawMessage    `json:"data"`
		Meta response.MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Meta.RequestID)
	require.NoError(t, json.Unmarshal(body.Data, out))
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]string
	decodeData(t, rec, &data)
	require.Equal(t, "ok", data["status"])
}

func decodeMeta(t *testing.T, rec *httptest.ResponseRecorder) response.MetaInfo {
	var body response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Meta)

	return *body.Meta
}
