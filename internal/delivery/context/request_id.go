// Package context carries request-scoped values between the HTTP layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the header a caller may use to propagate its own request id.
	HeaderXRequestID = "X-Request-Id"
)

// RequestID returns the request id stored on c, minting one when the middleware did not run.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestIDFromContext returns "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// LoggerOrDefault returns the request-scoped logger, or fallback when ctx carries none.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
