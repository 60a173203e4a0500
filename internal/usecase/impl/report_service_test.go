package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
	mockRepo "fooddash/internal/mocks/repository"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

var reportNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type reportServiceFixtures struct {
	service    usecase.ReportUsecase
	reportRepo *mockRepo.MockReportRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)

	service := NewReportService(ReportServiceParams{
		ReportRepo:     reportRepo,
		Clock:          newFixedClock(t, reportNow),
		TracerProvider: noop.NewTracerProvider(),
		Logger:         newDiscardLogger(),
	})

	return reportServiceFixtures{
		service:    service,
		reportRepo: reportRepo,
	}
}

func TestReportService_ListReports(t *testing.T) {
	fx := createTestReportService(t)

	descriptors := fx.service.ListReports()
	require.Len(t, descriptors, len(report.Catalog()))
	assert.Equal(t, "providers-receivers-per-city", descriptors[0].Slug)
}

func TestReportService_RunReport_UnknownSlug(t *testing.T) {
	fx := createTestReportService(t)

	result, err := fx.service.RunReport(context.Background(), "nope", filter.Default(reportNow))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestReportService_RunReport_PassesNormalizedFilterAndToday(t *testing.T) {
	fx := createTestReportService(t)

	in := filter.Filter{City: "Springfield", From: day(2024, time.January, 1), To: day(2024, time.January, 31)}
	want := filter.Filter{City: "Springfield", ProviderType: filter.All, FoodType: filter.All, From: in.From, To: in.To}

	table := report.NewTable([]string{"location", "listing_count"})
	table.Rows = append(table.Rows, []any{"Springfield", int64(2)})

	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.ListingsByCity{}, want, day(2024, time.June, 1)).
		Return(table, nil)

	result, err := fx.service.RunReport(context.Background(), "listings-by-city", in)
	require.NoError(t, err)
	assert.Equal(t, "listings-by-city", result.Report.Slug)
	assert.Equal(t, want, result.Filter)
	assert.Equal(t, table, result.Table)
	assert.False(t, result.Empty)
	assert.Empty(t, result.Error)
}

func TestReportService_RunReport_EmptyIsNotAnError(t *testing.T) {
	fx := createTestReportService(t)

	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.WastageByLocation{}, mock.Anything, mock.Anything).
		Return(report.NewTable([]string{"location", "items_wasted", "qty_wasted"}), nil)

	result, err := fx.service.RunReport(context.Background(), "wastage-by-location", filter.Default(reportNow))
	require.NoError(t, err)
	assert.True(t, result.Empty)
	assert.NotNil(t, result.Table.Rows)
}

func TestReportService_RunReport_StoreFailure(t *testing.T) {
	fx := createTestReportService(t)

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "run report")
	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.ClaimStatusShare{}, mock.Anything, mock.Anything).
		Return(nil, storeErr)

	result, err := fx.service.RunReport(context.Background(), "claim-status-share", filter.Default(reportNow))
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestReportService_RunBatch_IsolatesFailures(t *testing.T) {
	fx := createTestReportService(t)

	table := report.NewTable([]string{"location", "listing_count"})
	table.Rows = append(table.Rows, []any{"Springfield", int64(1)})

	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.ListingsByCity{}, mock.Anything, mock.Anything).
		Return(table, nil)
	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.ClaimStatusShare{}, mock.Anything, mock.Anything).
		Return(nil, errors.New("division by zero"))
	fx.reportRepo.EXPECT().
		Run(mock.Anything, report.ListingsByFoodType{}, mock.Anything, mock.Anything).
		Return(report.NewTable([]string{"food_type", "count_available"}), nil)

	results := fx.service.RunBatch(context.Background(),
		[]string{"listings-by-city", "does-not-exist", "claim-status-share", "listings-by-food-type"},
		filter.Default(reportNow))
	require.Len(t, results, 4)

	assert.Empty(t, results[0].Error)
	assert.Equal(t, table, results[0].Table)

	assert.Equal(t, "does-not-exist", results[1].Report.Slug)
	assert.Contains(t, results[1].Error, "Report not found")
	assert.Nil(t, results[1].Table)

	assert.Contains(t, results[2].Error, "division by zero")
	assert.Nil(t, results[2].Table)

	assert.Empty(t, results[3].Error)
	assert.True(t, results[3].Empty)
}
