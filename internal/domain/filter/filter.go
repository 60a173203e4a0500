// Package filter holds the dashboard's selected scope and renders it into SQL predicates.
//
// A Filter is a plain value threaded into every KPI, report and listing call.
// Predicates only ever interpolate column names from the closed Column set;
// selected values are always returned as named parameter bindings.
package filter

import (
	"strings"
	"time"
)

// All is the sentinel selection that disables a filter.
const All = "All"

// DateLayout is the wire and binding format of filter dates.
const DateLayout = "2006-01-02"

// Filter is the currently selected scope of the dashboard.
type Filter struct {
	City         string    `json:"city"`
	ProviderType string    `json:"provider_type"`
	FoodType     string    `json:"food_type"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}

// Default returns a filter with every selection set to All and the range
// [Jan 1 of today's year, today].
func Default(today time.Time) Filter {
	y, _, _ := today.Date()

	return Filter{
		City:         All,
		ProviderType: All,
		FoodType:     All,
		From:         time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:           dateOf(today),
	}
}

// Normalize maps blank selections to All and strips the time of day from the range.
func (f Filter) Normalize() Filter {
	f.City = selection(f.City)
	f.ProviderType = selection(f.ProviderType)
	f.FoodType = selection(f.FoodType)
	f.From = dateOf(f.From)
	f.To = dateOf(f.To)

	return f
}

// InvertedRange reports whether From is after To. Such a range matches nothing.
func (f Filter) InvertedRange() bool {
	return dateOf(f.From).After(dateOf(f.To))
}

// Scope renders the food listing predicate: one equality per selection that is not All.
func (f Filter) Scope() Predicate {
	f = f.Normalize()

	eqs := []equality{
		{column: ColumnLocation, param: ParamCity, value: f.City},
		{column: ColumnProviderType, param: ParamProviderType, value: f.ProviderType},
		{column: ColumnFoodType, param: ParamFoodType, value: f.FoodType},
	}

	var b predicateBuilder
	for _, eq := range eqs {
		if eq.value == All {
			continue
		}
		b.equal(eq.column, eq.param, eq.value)
	}

	return b.build()
}

// Window renders the claim predicate: the timestamp's date within [From, To], both inclusive.
func (f Filter) Window() Predicate {
	f = f.Normalize()

	var b predicateBuilder
	b.dateBetween(ColumnClaimDate, ParamFrom, ParamTo, f.From, f.To)

	return b.build()
}

// ExpiryWindow renders the wastage date axis: the listing's expiry date within [From, To].
// It is independent of the claim window and binds its own parameter names.
func (f Filter) ExpiryWindow() Predicate {
	f = f.Normalize()

	var b predicateBuilder
	b.dateBetween(ColumnExpiryDate, ParamExpiryFrom, ParamExpiryTo, f.From, f.To)

	return b.build()
}

// ExpiredBefore renders "expiry date strictly before today".
func ExpiredBefore(today time.Time) Predicate {
	var b predicateBuilder
	b.dateBefore(ColumnExpiryDate, ParamToday, today)

	return b.build()
}

func selection(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, All) {
		return All
	}

	return v
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
