package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrValidationFailed.WithDetails("name is required")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrProviderNotFound)
	assert.Equal(t, "name is required", err.Details())
	assert.Equal(t, "Input validation failed: name is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrReferenceConflict.WrapMessage("failed to delete provider")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "REFERENCE_CONFLICT", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestDatabaseExecuteError_SurfacesUnderlyingMessage(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := NewDatabaseExecuteError(cause, "failed to run report")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to run report: dial tcp 127.0.0.1:5432: connect: connection refused", err.Details())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
