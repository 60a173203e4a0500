// Package report defines the closed catalog of canned aggregate reports.
//
// Each report is its own type. Query construction is delegated to a Visitor with
// one method per report, so adding a report without teaching every backend how to
// build it fails to compile.
package report

import (
	"fooddash/internal/domain/filter"
)

// Chart is the kind of chart the presentation layer may draw for a report.
type Chart string

const (
	ChartNone Chart = "none"
	ChartBar  Chart = "bar"
	ChartPie  Chart = "pie"
	ChartLine Chart = "line"
)

// Input names a predicate set a report consumes.
type Input string

const (
	InputScope        Input = "scope"
	InputWindow       Input = "window"
	InputExpiryWindow Input = "expiry_window"
)

// Descriptor is the presentation-facing metadata of a report.
type Descriptor struct {
	Slug   string  `json:"slug"`
	Title  string  `json:"title"`
	Inputs []Input `json:"inputs"`
	Chart  Chart   `json:"chart"`
	X      string  `json:"x,omitempty"`
	Y      string  `json:"y,omitempty"`
	Limit  int     `json:"limit,omitempty"`
}

// Query is a parameterized statement with @name placeholders.
type Query struct {
	SQL    string
	Params map[string]any
}

// Report is one canned report. The set of implementations is closed to this package.
type Report interface {
	Describe() Descriptor
	Accept(v Visitor) (Query, error)
	sealed()
}

// Visitor builds the query of every report variant.
type Visitor interface {
	ProvidersReceiversPerCity(r ProvidersReceiversPerCity) (Query, error)
	QuantityByProviderType(r QuantityByProviderType) (Query, error)
	TopClaimingReceivers(r TopClaimingReceivers) (Query, error)
	TotalAvailableQuantity(r TotalAvailableQuantity) (Query, error)
	ListingsByCity(r ListingsByCity) (Query, error)
	ListingsByFoodType(r ListingsByFoodType) (Query, error)
	ClaimsPerFoodItem(r ClaimsPerFoodItem) (Query, error)
	SuccessfulClaimsPerProvider(r SuccessfulClaimsPerProvider) (Query, error)
	ClaimStatusShare(r ClaimStatusShare) (Query, error)
	AvgQuantityPerReceiver(r AvgQuantityPerReceiver) (Query, error)
	ClaimsPerMealType(r ClaimsPerMealType) (Query, error)
	QuantityPerProvider(r QuantityPerProvider) (Query, error)
	DemandByCity(r DemandByCity) (Query, error)
	WastageByLocation(r WastageByLocation) (Query, error)
	WastageTrend(r WastageTrend) (Query, error)
}

type variant struct{}

func (variant) sealed() {}

// Table is a column-named tabular result. Rows is never nil.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// NewTable creates an empty table with the given columns.
func NewTable(columns []string) *Table {
	if columns == nil {
		columns = []string{}
	}

	return &Table{Columns: columns, Rows: [][]any{}}
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Result is the outcome of running one report for a filter.
// A failed report carries Error and no Table.
type Result struct {
	Report Descriptor    `json:"report"`
	Filter filter.Filter `json:"filter"`
	Table  *Table        `json:"table,omitempty"`
	Empty  bool          `json:"empty"`
	Error  string        `json:"error,omitempty"`
}
