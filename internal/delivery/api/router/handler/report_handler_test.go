package handler

import (
	"net/http"
	"testing"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	mockUC "fooddash/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportHandler(t *testing.T) (*ReportHandler, *mockUC.MockReportUsecase) {
	reportUC := mockUC.NewMockReportUsecase(t)

	return NewReportHandler(ReportHandlerParams{
		ReportUC:     reportUC,
		FilterBinder: newTestFilterBinder(t),
	}), reportUC
}

func TestReportHandler_RunReport(t *testing.T) {
	h, reportUC := createTestReportHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/reports/demand-by-city?city=Springfield", "")
	c.SetParamNames("slug")
	c.SetParamValues("demand-by-city")

	want := filter.Default(handlerToday)
	want.City = "Springfield"

	reportUC.EXPECT().
		RunReport(mock.Anything, "demand-by-city", want).
		Return(&report.Result{
			Report: report.DemandByCity{}.Describe(),
			Filter: want,
			Table:  report.NewTable([]string{"city", "total_claims"}),
			Empty:  true,
		}, nil)

	require.NoError(t, h.RunReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got report.Result
	decodeData(t, rec, &got)
	assert.True(t, got.Empty)
	assert.Equal(t, []string{"city", "total_claims"}, got.Table.Columns)
	assert.Empty(t, got.Table.Rows)
}

func TestReportHandler_RunReport_UnknownSlug(t *testing.T) {
	h, reportUC := createTestReportHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/reports/nope", "")
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	reportUC.EXPECT().
		RunReport(mock.Anything, "nope", mock.Anything).
		Return(nil, domainerrors.ErrReportNotFound.WithDetails("nope"))

	require.NoError(t, h.RunReport(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REPORT_NOT_FOUND", decodeError(t, rec).Code)
}

func TestReportHandler_RunBatch(t *testing.T) {
	h, reportUC := createTestReportHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/reports/batch", `{"slugs":["listings-by-city","nope"]}`)

	reportUC.EXPECT().
		RunBatch(mock.Anything, []string{"listings-by-city", "nope"}, filter.Default(handlerToday)).
		Return([]*report.Result{
			{Report: report.ListingsByCity{}.Describe(), Table: report.NewTable(nil), Empty: true},
			{Report: report.Descriptor{Slug: "nope"}, Error: "Report not found: nope"},
		})

	require.NoError(t, h.RunBatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []report.Result
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Report not found: nope", got[1].Error)
}

func TestReportHandler_RunBatch_RequiresSlugs(t *testing.T) {
	h, _ := createTestReportHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/api/v1/reports/batch", `{"slugs":[]}`)

	require.NoError(t, h.RunBatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, errInfo.Details, "slugs")
}

func TestReportHandler_ListReports(t *testing.T) {
	h, reportUC := createTestReportHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/api/v1/reports", "")

	reportUC.EXPECT().ListReports().Return(report.Descriptors())

	require.NoError(t, h.ListReports(c))

	var got []report.Descriptor
	decodeData(t, rec, &got)
	assert.Len(t, got, len(report.Catalog()))
}
