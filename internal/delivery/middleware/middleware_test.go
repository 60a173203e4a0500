package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddash/config"
	deliverycontext "fooddash/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	mw := NewRequestIDMiddleware(newBufferLogger(&buf))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())
		deliverycontext.LoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", deliverycontext.RequestID(c))
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc-123", line["request_id"])
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.Default())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestRequestIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	for _, header := range []string{"has space", "line\nbreak", string(make([]byte, maxRequestIDLength+1))} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, header, got)
		assert.Len(t, got, 36)
	}
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(newBufferLogger(&buf), cfg)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	err := mw.Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "nothing here")
	})(c)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(newBufferLogger(&buf), &config.Config{})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Zero(t, buf.Len())
}
