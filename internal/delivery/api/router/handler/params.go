package handler

import (
	"strconv"
	"strings"
	"time"

	"fooddash/internal/delivery/api/validator"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// FilterQuery is the query-string form of a filter. Omitted values fall back to the defaults.
type FilterQuery struct {
	City         string `query:"city"`
	ProviderType string `query:"provider_type"`
	FoodType     string `query:"food_type"`
	From         string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To           string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// FilterBinder reads filters from the query string, defaulting the range from the clock.
type FilterBinder struct {
	clock service.Clock
}

func NewFilterBinder(clock service.Clock) *FilterBinder {
	return &FilterBinder{clock: clock}
}

// Bind returns the filter of the request. An inverted range is accepted and simply matches nothing.
func (b *FilterBinder) Bind(c echo.Context) (filter.Filter, error) {
	var q FilterQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return filter.Filter{}, domainerrors.ErrInvalidFilter.WithDetails("malformed query string")
	}

	if err := c.Validate(&q); err != nil {
		return filter.Filter{}, domainerrors.ErrInvalidFilter.WithDetails(validator.Describe(err))
	}

	f := filter.Default(b.clock.Today())
	f.City = orDefault(q.City, f.City)
	f.ProviderType = orDefault(q.ProviderType, f.ProviderType)
	f.FoodType = orDefault(q.FoodType, f.FoodType)

	// Both dates were validated above.
	if q.From != "" {
		f.From, _ = time.Parse(filter.DateLayout, q.From)
	}
	if q.To != "" {
		f.To, _ = time.Parse(filter.DateLayout, q.To)
	}

	return f.Normalize(), nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}

	return v
}

// parseID reads the positive integer :id path parameter.
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
