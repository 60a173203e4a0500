package repository

import (
	"context"

	"fooddash/internal/domain/filter"
)

// StatsRepository computes the dashboard's headline scalars. Every method returns zero when nothing matches.
type StatsRepository interface {
	// CountProviders counts every provider, unfiltered.
	CountProviders(ctx context.Context) (int64, error)

	// CountReceivers counts every receiver, unfiltered.
	CountReceivers(ctx context.Context) (int64, error)

	// SumAvailableQuantity sums listing quantity under the filter's scope.
	SumAvailableQuantity(ctx context.Context, f filter.Filter) (int64, error)

	// CountClaimsInWindow counts claims whose date falls in the filter's window.
	CountClaimsInWindow(ctx context.Context, f filter.Filter) (int64, error)
}
