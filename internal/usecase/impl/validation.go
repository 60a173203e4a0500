package impl

import (
	"strings"
	"time"

	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/filter"
)

// requireText rejects a required text field that is empty after trimming.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	return nil
}

// parseDate parses a YYYY-MM-DD date. An empty string is the zero date.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}

	d, err := time.Parse(filter.DateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(field + " must be a YYYY-MM-DD date")
	}

	return d, nil
}
