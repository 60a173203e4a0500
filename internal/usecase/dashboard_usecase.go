package usecase

import (
	"context"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"
)

// Overview holds the dashboard panels. Each panel is computed independently and carries its own error.
type Overview struct {
	Filter       filter.Filter  `json:"filter"`
	TopProviders *report.Result `json:"top_providers"`
	DemandByCity *report.Result `json:"demand_by_city"`
	MealTypes    *report.Result `json:"meal_types"`
	WastageTrend *report.Result `json:"wastage_trend"`
}

// DashboardUsecase computes the headline figures and panels for a filter
type DashboardUsecase interface {
	// DefaultFilter returns the filter used when the caller selects nothing
	DefaultFilter() filter.Filter

	// GetKPIs computes the four headline scalars
	GetKPIs(ctx context.Context, f filter.Filter) (*entity.KPISummary, error)

	// GetOverview runs the four dashboard panels
	GetOverview(ctx context.Context, f filter.Filter) (*Overview, error)
}
