package postgres

import (
	"fmt"
	"time"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"

	"github.com/pkg/errors"
)

const paramRowLimit = "row_limit"

// reportQueryBuilder renders every catalog report against the four tables.
// food_data is always aliased f and claim_data c, so filter predicates apply unchanged.
type reportQueryBuilder struct {
	f     filter.Filter
	today time.Time
}

var _ report.Visitor = reportQueryBuilder{}

func newReportQueryBuilder(f filter.Filter, today time.Time) reportQueryBuilder {
	return reportQueryBuilder{f: f.Normalize(), today: today}
}

func (b reportQueryBuilder) completed() filter.Predicate {
	return filter.ClaimStatusIs(entity.ClaimStatusCompleted.String())
}

// finish appends the row limit and returns the query with its bindings.
func finish(sql string, params map[string]any, limit int) report.Query {
	if params == nil {
		params = make(map[string]any)
	}
	if limit > 0 {
		sql += "\nLIMIT @" + paramRowLimit + "\n"
		params[paramRowLimit] = limit
	}

	return report.Query{SQL: sql, Params: params}
}

func where(preds ...filter.Predicate) (filter.Predicate, error) {
	cond, err := filter.And(preds...)
	if err != nil {
		return filter.Predicate{}, errors.Wrap(err, "failed to compose report predicate")
	}

	return cond, nil
}

func (b reportQueryBuilder) ProvidersReceiversPerCity(report.ProvidersReceiversPerCity) (report.Query, error) {
	return finish(`SELECT p.city,
       COUNT(DISTINCT p.provider_id) AS provider_count,
       COUNT(DISTINCT r.receiver_id) AS receiver_count
FROM provider_data p
LEFT JOIN receiver_data r ON p.city = r.city
GROUP BY p.city
ORDER BY p.city`, nil, 0), nil
}

func (b reportQueryBuilder) QuantityByProviderType(report.QuantityByProviderType) (report.Query, error) {
	cond, err := where(b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT f.provider_type, COALESCE(SUM(f.quantity), 0) AS total_quantity
FROM food_data f
WHERE %s
GROUP BY f.provider_type
ORDER BY total_quantity DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) TopClaimingReceivers(r report.TopClaimingReceivers) (report.Query, error) {
	cond, err := where(b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT r.name, r.city, SUM(f.quantity) AS total_claimed
FROM claim_data c
JOIN receiver_data r ON c.receiver_id = r.receiver_id
JOIN food_data f ON c.food_id = f.food_id
WHERE %s
GROUP BY r.name, r.city
ORDER BY total_claimed DESC`, cond.SQL), cond.Params, r.Limit), nil
}

func (b reportQueryBuilder) TotalAvailableQuantity(report.TotalAvailableQuantity) (report.Query, error) {
	cond, err := where(b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT COALESCE(SUM(f.quantity), 0) AS total_food_available
FROM food_data f
WHERE %s`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) ListingsByCity(report.ListingsByCity) (report.Query, error) {
	cond, err := where(b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT f.location, COUNT(*) AS listing_count
FROM food_data f
WHERE %s
GROUP BY f.location
ORDER BY listing_count DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) ListingsByFoodType(report.ListingsByFoodType) (report.Query, error) {
	cond, err := where(b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT f.food_type, COUNT(*) AS count_available
FROM food_data f
WHERE %s
GROUP BY f.food_type
ORDER BY count_available DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) ClaimsPerFoodItem(report.ClaimsPerFoodItem) (report.Query, error) {
	cond, err := where(b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT f.food_name, COUNT(DISTINCT c.claim_id) AS total_claims
FROM claim_data c
JOIN food_data f ON c.food_id = f.food_id
WHERE %s
GROUP BY f.food_name, f.food_id
ORDER BY total_claims DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) SuccessfulClaimsPerProvider(report.SuccessfulClaimsPerProvider) (report.Query, error) {
	cond, err := where(b.completed(), b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT p.name AS donor, COUNT(c.claim_id) AS successful_donated
FROM claim_data c
JOIN food_data f ON c.food_id = f.food_id
JOIN provider_data p ON f.provider_id = p.provider_id
WHERE %s
GROUP BY p.provider_id, p.name
ORDER BY successful_donated DESC`, cond.SQL), cond.Params, 0), nil
}

// ClaimStatusShare divides by the window total; NULLIF keeps an empty window from dividing by zero.
func (b reportQueryBuilder) ClaimStatusShare(report.ClaimStatusShare) (report.Query, error) {
	cond, err := where(b.f.Window())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT c.status,
       CAST(ROUND(COUNT(*) * 100.0 / NULLIF((SELECT COUNT(*) FROM claim_data c WHERE %[1]s), 0), 2) AS float8) AS percentage
FROM claim_data c
WHERE %[1]s
GROUP BY c.status
ORDER BY c.status`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) AvgQuantityPerReceiver(report.AvgQuantityPerReceiver) (report.Query, error) {
	cond, err := where(b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT r.name AS receiver_name, CAST(ROUND(AVG(f.quantity), 2) AS float8) AS avg_qty_claimed
FROM claim_data c
JOIN receiver_data r ON c.receiver_id = r.receiver_id
JOIN food_data f ON c.food_id = f.food_id
WHERE %s
GROUP BY r.receiver_id, r.name
ORDER BY avg_qty_claimed DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) ClaimsPerMealType(report.ClaimsPerMealType) (report.Query, error) {
	cond, err := where(b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT f.meal_type, COUNT(DISTINCT c.claim_id) AS total_claims
FROM claim_data c
JOIN food_data f ON c.food_id = f.food_id
WHERE %s
GROUP BY f.meal_type
ORDER BY total_claims DESC`, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) QuantityPerProvider(r report.QuantityPerProvider) (report.Query, error) {
	cond, err := where(b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT p.name AS provider_name, SUM(f.quantity) AS total_qty_donated
FROM food_data f
JOIN provider_data p ON f.provider_id = p.provider_id
WHERE %s
GROUP BY p.provider_id, p.name
ORDER BY total_qty_donated DESC`, cond.SQL), cond.Params, r.Limit), nil
}

// DemandByCity attributes demand to the receiver's city, not the listing's location.
func (b reportQueryBuilder) DemandByCity(r report.DemandByCity) (report.Query, error) {
	cond, err := where(b.completed(), b.f.Window(), b.f.Scope())
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`SELECT r.city, COUNT(c.claim_id) AS total_claims
FROM claim_data c
JOIN receiver_data r ON c.receiver_id = r.receiver_id
JOIN food_data f ON c.food_id = f.food_id
WHERE %s
GROUP BY r.city
ORDER BY total_claims DESC`, cond.SQL), cond.Params, r.Limit), nil
}

// wasted renders the CTE and predicate shared by both wastage reports.
// A listing is wasted once expired when no Completed claim reached it by its expiry date.
func (b reportQueryBuilder) wasted() (cte string, cond filter.Predicate, err error) {
	completed := b.completed()
	notClaimedInTime := filter.Predicate{
		SQL: "fc.first_completed_at IS NULL OR fc.first_completed_at > f.expiry_date",
	}

	cond, err = where(filter.ExpiredBefore(b.today), b.f.Scope(), notClaimedInTime, b.f.ExpiryWindow())
	if err != nil {
		return "", filter.Predicate{}, err
	}

	// The CTE binds the status; the outer predicate carries every binding of the statement.
	cond.Params, err = filter.Bind(cond, completed)
	if err != nil {
		return "", filter.Predicate{}, errors.Wrap(err, "failed to compose wastage predicate")
	}

	cte = fmt.Sprintf(`WITH completed AS (
  SELECT c.food_id, MIN(c.timestamp) AS first_completed_at
  FROM claim_data c
  WHERE %s
  GROUP BY c.food_id
)`, completed.SQL)

	return cte, cond, nil
}

func (b reportQueryBuilder) WastageByLocation(report.WastageByLocation) (report.Query, error) {
	cte, cond, err := b.wasted()
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`%s
SELECT f.location, COUNT(DISTINCT f.food_id) AS wasted_items, COALESCE(SUM(f.quantity), 0) AS qty_wasted
FROM food_data f
LEFT JOIN completed fc ON fc.food_id = f.food_id
WHERE %s
GROUP BY f.location
ORDER BY wasted_items DESC`, cte, cond.SQL), cond.Params, 0), nil
}

func (b reportQueryBuilder) WastageTrend(report.WastageTrend) (report.Query, error) {
	cte, cond, err := b.wasted()
	if err != nil {
		return report.Query{}, err
	}

	return finish(fmt.Sprintf(`%s
SELECT CAST(DATE_TRUNC('month', f.expiry_date) AS date) AS month,
       COUNT(DISTINCT f.food_id) AS items_wasted,
       COALESCE(SUM(f.quantity), 0) AS qty_wasted
FROM food_data f
LEFT JOIN completed fc ON fc.food_id = f.food_id
WHERE %s
GROUP BY 1
ORDER BY 1`, cte, cond.SQL), cond.Params, 0), nil
}
