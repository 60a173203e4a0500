// Package clock provides the calendar the dashboard evaluates "today" against.
package clock

import (
	"time"

	"fooddash/config"
	"fooddash/internal/domain/service"

	"github.com/pkg/errors"
)

type zonedClock struct {
	loc *time.Location
	now func() time.Time
}

// New returns a clock in the configured dashboard time zone.
func New(cfg *config.Config) (service.Clock, error) {
	name := "UTC"
	if cfg != nil && cfg.Dashboard != nil && cfg.Dashboard.TimeZone != "" {
		name = cfg.Dashboard.TimeZone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dashboard time zone %q", name)
	}

	return &zonedClock{loc: loc, now: time.Now}, nil
}

func (c *zonedClock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today takes the calendar date in the configured zone and labels it as midnight UTC,
// which is how dates are compared everywhere else.
func (c *zonedClock) Today() time.Time {
	y, m, d := c.Now().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
