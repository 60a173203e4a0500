package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"fooddash/internal/domain/report"
	"fooddash/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements with the PostgreSQL dialect without connecting.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=fooddash dbname=fooddash sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db
}

// assertBoundVars checks that SQL holds exactly $1..$n for n vars and that no map leaked into the vars.
func assertBoundVars(t *testing.T, stmt *gorm.Statement) {
	t.Helper()

	sql := stmt.SQL.String()
	assert.NotContains(t, sql, "@")
	assert.NotContains(t, sql, `"1=1"`)
	for i := range stmt.Vars {
		assert.Contains(t, sql, fmt.Sprintf("$%d", i+1))
		_, isMap := stmt.Vars[i].(map[string]any)
		assert.False(t, isMap, "var %d is a binding map", i+1)
	}
	assert.NotContains(t, sql, fmt.Sprintf("$%d", len(stmt.Vars)+1))
}

func TestStatsRepository_AvailableQuantityStatement(t *testing.T) {
	t.Parallel()

	repo := &statsRepository{db: newDryRunDB(t)}
	filters := testFilters()

	var total int64
	stmt := repo.availableQuantity(context.Background(), filters["all"]).Find(&total).Statement
	require.NoError(t, stmt.Error)
	assert.Contains(t, stmt.SQL.String(), "FROM food_data AS f WHERE 1=1")
	assert.Empty(t, stmt.Vars)
	assertBoundVars(t, stmt)

	stmt = repo.availableQuantity(context.Background(), filters["selected"]).Find(&total).Statement
	require.NoError(t, stmt.Error)
	assert.Contains(t, stmt.SQL.String(), "f.location = $1 AND f.provider_type = $2 AND f.food_type = $3")
	assert.Equal(t, []any{"Springfield", "Restaurant", "Vegan"}, stmt.Vars)
	assertBoundVars(t, stmt)
}

func TestFoodListingRepository_ScopedStatement(t *testing.T) {
	t.Parallel()

	repo := &foodListingRepository{db: newDryRunDB(t)}
	filters := testFilters()

	var listings []*model.FoodListingModel
	stmt := repo.scoped(context.Background(), filters["all"]).Find(&listings).Statement
	require.NoError(t, stmt.Error)
	assert.Contains(t, stmt.SQL.String(), "WHERE 1=1")
	assert.Contains(t, stmt.SQL.String(), "ORDER BY f.expiry_date NULLS LAST")
	assert.Empty(t, stmt.Vars)
	assertBoundVars(t, stmt)

	listings = nil
	stmt = repo.scoped(context.Background(), filters["selected"]).Find(&listings).Statement
	require.NoError(t, stmt.Error)
	assert.Equal(t, []any{"Springfield", "Restaurant", "Vegan"}, stmt.Vars)
	assertBoundVars(t, stmt)
}

func TestReportStatement_EveryReportBindsPositionally(t *testing.T) {
	t.Parallel()

	db := newDryRunDB(t)
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	filters := testFilters()

	for _, name := range []string{"all", "selected"} {
		for _, r := range report.Catalog() {
			slug := r.Describe().Slug
			t.Run(name+"/"+slug, func(t *testing.T) {
				q, err := r.Accept(newReportQueryBuilder(filters[name], today))
				require.NoError(t, err)

				stmt := reportStatement(db, q).Statement
				require.NoError(t, stmt.Error)

				placeholders := namedParam.FindAllStringSubmatch(q.SQL, -1)
				require.Len(t, stmt.Vars, len(placeholders))
				for i, m := range placeholders {
					assert.Equal(t, q.Params[m[1]], stmt.Vars[i], "$%d binds @%s", i+1, m[1])
				}
				assertBoundVars(t, stmt)
			})
		}
	}
}

func TestReportStatement_ProvidersPerCityHasNoVars(t *testing.T) {
	t.Parallel()

	q, err := report.ProvidersReceiversPerCity{}.Accept(newReportQueryBuilder(testFilters()["all"], time.Now()))
	require.NoError(t, err)

	stmt := reportStatement(newDryRunDB(t), q).Statement
	assert.Empty(t, stmt.Vars)
	assert.Equal(t, q.SQL, stmt.SQL.String())
}
