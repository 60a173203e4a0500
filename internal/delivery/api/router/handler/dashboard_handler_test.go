package handler

import (
	"net/http"
	"testing"
	"time"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
	mockUC "fooddash/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDashboardHandler(t *testing.T) (*DashboardHandler, *mockUC.MockDashboardUsecase) {
	dashboardUC := mockUC.NewMockDashboardUsecase(t)

	return NewDashboardHandler(DashboardHandlerParams{
		DashboardUC:  dashboardUC,
		FilterBinder: newTestFilterBinder(t),
		Logger:       nil,
	}), dashboardUC
}

func TestDashboardHandler_GetKPIs(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/dashboard/kpis?city=X&from=2024-01-01&to=2024-12-31", "")

	want := filter.Filter{
		City:         "X",
		ProviderType: filter.All,
		FoodType:     filter.All,
		From:         time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	dashboardUC.EXPECT().
		GetKPIs(mock.Anything, want).
		Return(&entity.KPISummary{TotalProviders: 2, TotalReceivers: 3, AvailableQuantity: 10, ClaimsInWindow: 4}, nil)

	require.NoError(t, h.GetKPIs(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.KPISummary
	decodeData(t, rec, &got)
	assert.Equal(t, int64(10), got.AvailableQuantity)
	assert.Equal(t, int64(4), got.ClaimsInWindow)
}

func TestDashboardHandler_GetKPIs_InvalidFilter(t *testing.T) {
	h, _ := createTestDashboardHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/dashboard/kpis?to=yesterday", "")

	require.NoError(t, h.GetKPIs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_FILTER", decodeError(t, rec).Code)
}

func TestDashboardHandler_GetKPIs_UnexpectedError(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	e := newTestEcho()
	c, _ := newTestContext(e, http.MethodGet, "/api/v1/dashboard/kpis", "")

	dashboardUC.EXPECT().GetKPIs(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	// Non-domain errors go to the echo error handler.
	assert.Error(t, h.GetKPIs(c))
}

func TestDashboardHandler_GetKPIs_EchoesResolvedFilter(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/dashboard/kpis?food_type=Vegan", "")

	dashboardUC.EXPECT().GetKPIs(mock.Anything, mock.Anything).Return(&entity.KPISummary{}, nil)

	require.NoError(t, h.GetKPIs(c))
	require.Equal(t, http.StatusOK, rec.Code)

	meta := decodeMeta(t, rec)
	require.NotNil(t, meta.Filter)
	assert.Equal(t, filter.All, meta.Filter.City)
	assert.Equal(t, "Vegan", meta.Filter.FoodType)
	assert.Equal(t, "2024-01-01", meta.Filter.From)
	assert.Equal(t, "2024-06-15", meta.Filter.To)
	assert.False(t, meta.Filter.InvertedRange)
}

func TestDashboardHandler_GetKPIs_InvertedRangeIsFlagged(t *testing.T) {
	h, dashboardUC := createTestDashboardHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/dashboard/kpis?from=2024-03-01&to=2024-02-01", "")

	dashboardUC.EXPECT().GetKPIs(mock.Anything, mock.Anything).Return(&entity.KPISummary{TotalProviders: 1}, nil)

	require.NoError(t, h.GetKPIs(c))
	require.Equal(t, http.StatusOK, rec.Code)

	meta := decodeMeta(t, rec)
	require.NotNil(t, meta.Filter)
	assert.True(t, meta.Filter.InvertedRange)
}
