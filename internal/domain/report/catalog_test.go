package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingVisitor answers every report with a query naming the visited method.
type recordingVisitor struct{}

func (recordingVisitor) q(name string) (Query, error) { return Query{SQL: name}, nil }

func (v recordingVisitor) ProvidersReceiversPerCity(ProvidersReceiversPerCity) (Query, error) {
	return v.q("ProvidersReceiversPerCity")
}
func (v recordingVisitor) QuantityByProviderType(QuantityByProviderType) (Query, error) {
	return v.q("QuantityByProviderType")
}
func (v recordingVisitor) TopClaimingReceivers(TopClaimingReceivers) (Query, error) {
	return v.q("TopClaimingReceivers")
}
func (v recordingVisitor) TotalAvailableQuantity(TotalAvailableQuantity) (Query, error) {
	return v.q("TotalAvailableQuantity")
}
func (v recordingVisitor) ListingsByCity(ListingsByCity) (Query, error) { return v.q("ListingsByCity") }
func (v recordingVisitor) ListingsByFoodType(ListingsByFoodType) (Query, error) {
	return v.q("ListingsByFoodType")
}
func (v recordingVisitor) ClaimsPerFoodItem(ClaimsPerFoodItem) (Query, error) {
	return v.q("ClaimsPerFoodItem")
}
func (v recordingVisitor) SuccessfulClaimsPerProvider(SuccessfulClaimsPerProvider) (Query, error) {
	return v.q("SuccessfulClaimsPerProvider")
}
func (v recordingVisitor) ClaimStatusShare(ClaimStatusShare) (Query, error) {
	return v.q("ClaimStatusShare")
}
func (v recordingVisitor) AvgQuantityPerReceiver(AvgQuantityPerReceiver) (Query, error) {
	return v.q("AvgQuantityPerReceiver")
}
func (v recordingVisitor) ClaimsPerMealType(ClaimsPerMealType) (Query, error) {
	return v.q("ClaimsPerMealType")
}
func (v recordingVisitor) QuantityPerProvider(QuantityPerProvider) (Query, error) {
	return v.q("QuantityPerProvider")
}
func (v recordingVisitor) DemandByCity(DemandByCity) (Query, error) { return v.q("DemandByCity") }
func (v recordingVisitor) WastageByLocation(WastageByLocation) (Query, error) {
	return v.q("WastageByLocation")
}
func (v recordingVisitor) WastageTrend(WastageTrend) (Query, error) { return v.q("WastageTrend") }

func TestCatalog_SlugsAreUniqueAndDispatchDistinctly(t *testing.T) {
	t.Parallel()

	reports := Catalog()
	require.Len(t, reports, 15)

	slugs := make(map[string]bool)
	visited := make(map[string]bool)
	for _, r := range reports {
		d := r.Describe()
		assert.NotEmpty(t, d.Title)
		assert.False(t, slugs[d.Slug], "duplicate slug %s", d.Slug)
		slugs[d.Slug] = true

		q, err := r.Accept(recordingVisitor{})
		require.NoError(t, err)
		assert.False(t, visited[q.SQL], "visitor method %s reached twice", q.SQL)
		visited[q.SQL] = true
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	r, ok := Lookup("wastage-by-location")
	require.True(t, ok)
	assert.IsType(t, WastageByLocation{}, r)

	_, ok = Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestDescriptors_InputsMatchSemantics(t *testing.T) {
	t.Parallel()

	inputs := make(map[string][]Input)
	for _, d := range Descriptors() {
		inputs[d.Slug] = d.Inputs
	}

	assert.Empty(t, inputs["providers-receivers-per-city"])
	assert.Equal(t, []Input{InputWindow}, inputs["claim-status-share"])
	assert.Equal(t, []Input{InputScope}, inputs["total-available-quantity"])
	assert.ElementsMatch(t, []Input{InputScope, InputExpiryWindow}, inputs["wastage-by-location"])
	assert.ElementsMatch(t, []Input{InputScope, InputWindow}, inputs["demand-by-city"])
}

func TestDescribe_CarriesLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, QuantityPerProvider{Limit: 10}.Describe().Limit)
	assert.Equal(t, 0, QuantityPerProvider{}.Describe().Limit)
	assert.Equal(t, 5, DemandByCity{Limit: 5}.Describe().Limit)
}

func TestTable_Empty(t *testing.T) {
	t.Parallel()

	var nilTable *Table
	assert.True(t, nilTable.Empty())

	table := NewTable(nil)
	assert.True(t, table.Empty())
	assert.NotNil(t, table.Rows)
	assert.NotNil(t, table.Columns)

	table.Rows = append(table.Rows, []any{"Springfield", int64(3)})
	assert.False(t, table.Empty())
}
