package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddash/config"
	"fooddash/internal/domain/repository"
	mockRepo "fooddash/internal/mocks/repository"
	mockSvc "fooddash/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(topN int) *config.Config {
	return &config.Config{
		Dashboard: &config.DashboardConfig{
			TimeZone: "UTC",
			TopN:     topN,
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newFixedClock returns a clock mock that may be asked for the time any number of times.
func newFixedClock(t *testing.T, now time.Time) *mockSvc.MockClock {
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(now).Maybe()
	clock.EXPECT().Today().Return(day(now.Year(), now.Month(), now.Day())).Maybe()

	return clock
}

// expectTx makes txManager run the callback against factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
