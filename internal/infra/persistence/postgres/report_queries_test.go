package postgres

import (
	"regexp"
	"testing"
	"time"

	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namedParam = regexp.MustCompile(`@([a-z_]+)`)

func testFilters() map[string]filter.Filter {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	return map[string]filter.Filter{
		"all":      {City: filter.All, ProviderType: filter.All, FoodType: filter.All, From: from, To: to},
		"selected": {City: "Springfield", ProviderType: "Restaurant", FoodType: "Vegan", From: from, To: to},
		"inverted": {City: "Springfield", From: to, To: from},
		"hostile":  {City: "x'); DROP TABLE food_data; --", From: from, To: to},
	}
}

func TestReportQueries_EveryPlaceholderIsBoundAndEveryBindingUsed(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	for name, f := range testFilters() {
		for _, r := range report.Catalog() {
			slug := r.Describe().Slug
			t.Run(name+"/"+slug, func(t *testing.T) {
				q, err := r.Accept(newReportQueryBuilder(f, today))
				require.NoError(t, err)
				require.NotEmpty(t, q.SQL)

				used := make(map[string]bool)
				for _, m := range namedParam.FindAllStringSubmatch(q.SQL, -1) {
					used[m[1]] = true
					assert.Contains(t, q.Params, m[1], "placeholder @%s has no binding", m[1])
				}
				for param := range q.Params {
					assert.True(t, used[param], "binding %s is not referenced", param)
				}

				assert.NotContains(t, q.SQL, "::", "casts must not use :: next to a placeholder")
				assert.NotContains(t, q.SQL, "DROP TABLE")
				assert.NotContains(t, q.SQL, "CURRENT_DATE")
			})
		}
	}
}

func TestReportQueries_PredicatesFollowDescriptorInputs(t *testing.T) {
	t.Parallel()

	f := testFilters()["selected"]
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for _, r := range report.Catalog() {
		d := r.Describe()
		q, err := r.Accept(newReportQueryBuilder(f, today))
		require.NoError(t, err)

		inputs := make(map[report.Input]bool)
		for _, in := range d.Inputs {
			inputs[in] = true
		}

		_, scoped := q.Params[filter.ParamCity]
		assert.Equal(t, inputs[report.InputScope], scoped, "%s scope", d.Slug)

		_, windowed := q.Params[filter.ParamFrom]
		assert.Equal(t, inputs[report.InputWindow], windowed, "%s window", d.Slug)

		_, expiry := q.Params[filter.ParamExpiryFrom]
		assert.Equal(t, inputs[report.InputExpiryWindow], expiry, "%s expiry window", d.Slug)
	}
}

func TestReportQueries_AllSelectionsDropScope(t *testing.T) {
	t.Parallel()

	q, err := report.TotalAvailableQuantity{}.Accept(newReportQueryBuilder(testFilters()["all"], time.Now()))
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "WHERE (1=1)")
	assert.Empty(t, q.Params)
}

func TestReportQueries_WastageBindsToday(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, time.June, 1, 21, 30, 0, 0, time.UTC)
	for _, r := range []report.Report{report.WastageByLocation{}, report.WastageTrend{}} {
		q, err := r.Accept(newReportQueryBuilder(testFilters()["all"], today))
		require.NoError(t, err)

		assert.Equal(t, "2024-06-01", q.Params[filter.ParamToday])
		assert.Equal(t, "Completed", q.Params[filter.ParamClaimStatus])
		assert.Contains(t, q.SQL, "f.expiry_date < CAST(@today AS date)")
		assert.Contains(t, q.SQL, "fc.first_completed_at IS NULL OR fc.first_completed_at > f.expiry_date")
		assert.Contains(t, q.SQL, "WITH completed AS")
	}
}

func TestReportQueries_DemandUsesReceiverCityAndCompletedClaims(t *testing.T) {
	t.Parallel()

	q, err := report.DemandByCity{Limit: 10}.Accept(newReportQueryBuilder(testFilters()["selected"], time.Now()))
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "SELECT r.city")
	assert.Contains(t, q.SQL, "GROUP BY r.city")
	assert.Contains(t, q.SQL, "c.status = @c_status")
	assert.Contains(t, q.SQL, "LIMIT @row_limit")
	assert.Equal(t, 10, q.Params[paramRowLimit])
}

func TestReportQueries_ZeroLimitIsUnlimited(t *testing.T) {
	t.Parallel()

	q, err := report.QuantityPerProvider{}.Accept(newReportQueryBuilder(testFilters()["all"], time.Now()))
	require.NoError(t, err)

	assert.NotContains(t, q.SQL, "LIMIT")
	assert.NotContains(t, q.Params, paramRowLimit)
}

func TestReportQueries_StatusShareOrderedByStatus(t *testing.T) {
	t.Parallel()

	q, err := report.ClaimStatusShare{}.Accept(newReportQueryBuilder(testFilters()["selected"], time.Now()))
	require.NoError(t, err)

	assert.Contains(t, q.SQL, "NULLIF(")
	assert.Contains(t, q.SQL, "ORDER BY c.status")
	assert.Len(t, namedParam.FindAllString(q.SQL, -1), 4)
}

func TestNormalizeCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Springfield", normalizeCell([]byte("Springfield")))
	assert.Equal(t, "2024-03-01", normalizeCell(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01T10:15:00Z", normalizeCell(time.Date(2024, time.March, 1, 10, 15, 0, 0, time.UTC)))
	assert.Equal(t, int64(7), normalizeCell(int32(7)))
	assert.Equal(t, int64(7), normalizeCell(int64(7)))
	assert.InDelta(t, 33.33, normalizeCell(33.33), 0.0001)
	assert.Nil(t, normalizeCell(nil))
}
