package filter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	f := Default(time.Date(2024, time.June, 1, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, All, f.City)
	assert.Equal(t, All, f.ProviderType)
	assert.Equal(t, All, f.FoodType)
	assert.Equal(t, day(2024, time.January, 1), f.From)
	assert.Equal(t, day(2024, time.June, 1), f.To)
}

func TestScope_AllSelectionsIsTrue(t *testing.T) {
	t.Parallel()

	for _, f := range []Filter{
		{City: All, ProviderType: All, FoodType: All},
		{},
		{City: " ", ProviderType: "all", FoodType: ""},
	} {
		p := f.Scope()
		assert.Equal(t, "1=1", p.SQL)
		assert.Empty(t, p.Params)
	}
}

var equalityClause = regexp.MustCompile(`^f\.[a-z_]+ = @[a-z_]+$`)

func TestScope_IsConjunctionOfEqualities(t *testing.T) {
	t.Parallel()

	cities := []string{All, "Springfield"}
	providerTypes := []string{All, "Supermarket"}
	foodTypes := []string{All, "Vegan"}

	for _, city := range cities {
		for _, ptype := range providerTypes {
			for _, ftype := range foodTypes {
				f := Filter{City: city, ProviderType: ptype, FoodType: ftype}
				p := f.Scope()

				assert.NotContains(t, strings.ToUpper(p.SQL), " OR ")

				selected := 0
				for _, v := range []string{city, ptype, ftype} {
					if v != All {
						selected++
					}
				}
				if selected == 0 {
					assert.Equal(t, "1=1", p.SQL)
					continue
				}

				clauses := strings.Split(p.SQL, " AND ")
				require.Len(t, clauses, selected)
				for _, c := range clauses {
					assert.Regexp(t, equalityClause, c)
				}
				assert.Len(t, p.Params, selected)
			}
		}
	}
}

func TestScope_BindsValuesNeverInterpolates(t *testing.T) {
	t.Parallel()

	hostile := "x' OR '1'='1"
	p := Filter{City: hostile, ProviderType: "Restaurant", FoodType: "Vegan"}.Scope()

	assert.Equal(t, "f.location = @f_city AND f.provider_type = @f_ptype AND f.food_type = @f_food", p.SQL)
	assert.NotContains(t, p.SQL, hostile)
	assert.Equal(t, map[string]any{
		ParamCity:         hostile,
		ParamProviderType: "Restaurant",
		ParamFoodType:     "Vegan",
	}, p.Params)
}

func TestWindow(t *testing.T) {
	t.Parallel()

	f := Filter{From: day(2024, time.January, 1), To: time.Date(2024, time.January, 31, 18, 0, 0, 0, time.UTC)}
	p := f.Window()

	assert.Equal(t, "CAST(c.timestamp AS date) BETWEEN CAST(@d_from AS date) AND CAST(@d_to AS date)", p.SQL)
	assert.Equal(t, map[string]any{ParamFrom: "2024-01-01", ParamTo: "2024-01-31"}, p.Params)
}

func TestExpiryWindow(t *testing.T) {
	t.Parallel()

	f := Filter{From: day(2024, time.January, 1), To: day(2024, time.December, 31)}
	p := f.ExpiryWindow()

	assert.Equal(t, "f.expiry_date BETWEEN CAST(@w_from AS date) AND CAST(@w_to AS date)", p.SQL)
	assert.Equal(t, map[string]any{ParamExpiryFrom: "2024-01-01", ParamExpiryTo: "2024-12-31"}, p.Params)
}

func TestExpiredBefore(t *testing.T) {
	t.Parallel()

	p := ExpiredBefore(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "f.expiry_date < CAST(@today AS date)", p.SQL)
	assert.Equal(t, map[string]any{ParamToday: "2024-06-01"}, p.Params)
}

func TestInvertedRange_IsNotAnError(t *testing.T) {
	t.Parallel()

	f := Filter{From: day(2024, time.March, 1), To: day(2024, time.February, 1)}

	assert.True(t, f.InvertedRange())
	p := f.Window()
	assert.Equal(t, "2024-03-01", p.Params[ParamFrom])
	assert.Equal(t, "2024-02-01", p.Params[ParamTo])
}

func TestBind_PredicateSetsNeverCollide(t *testing.T) {
	t.Parallel()

	f := Filter{City: "Springfield", ProviderType: "Restaurant", FoodType: "Vegan", From: day(2024, time.January, 1), To: day(2024, time.June, 1)}

	params, err := Bind(f.Scope(), f.Window(), f.ExpiryWindow(), ExpiredBefore(day(2024, time.June, 1)), ClaimStatusIs("Completed"))
	require.NoError(t, err)
	assert.Len(t, params, 9)
}

func TestBind_Collision(t *testing.T) {
	t.Parallel()

	a := Predicate{SQL: "x = @p", Params: map[string]any{"p": 1}}
	b := Predicate{SQL: "y = @p", Params: map[string]any{"p": 2}}

	_, err := Bind(a, b)
	assert.ErrorIs(t, err, ErrParamCollision)

	same := Predicate{SQL: "z = @p", Params: map[string]any{"p": 1}}
	params, err := Bind(a, same)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"p": 1}, params)
}

func TestAnd(t *testing.T) {
	t.Parallel()

	f := Filter{City: "Springfield", From: day(2024, time.January, 1), To: day(2024, time.January, 31)}

	p, err := And(f.Scope(), f.Window())
	require.NoError(t, err)
	assert.Equal(t, "(f.location = @f_city) AND (CAST(c.timestamp AS date) BETWEEN CAST(@d_from AS date) AND CAST(@d_to AS date))", p.SQL)
	assert.Len(t, p.Params, 3)

	empty, err := And()
	require.NoError(t, err)
	assert.Equal(t, "1=1", empty.SQL)
}

func TestClaimStatusIs(t *testing.T) {
	t.Parallel()

	p := ClaimStatusIs("Completed")

	assert.Equal(t, "c.status = @c_status", p.SQL)
	assert.Equal(t, map[string]any{ParamClaimStatus: "Completed"}, p.Params)
}
