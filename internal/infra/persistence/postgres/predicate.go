package postgres

import (
	"fooddash/internal/domain/filter"
	"fooddash/internal/domain/report"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// whereExpr hands a predicate to Where as a named expression.
// A bare string such as "1=1" would otherwise be taken for a column name.
func whereExpr(p filter.Predicate) clause.Expression {
	return clause.NamedExpr{SQL: p.SQL, Vars: []any{p.Params}}
}

// reportStatement binds q to db. Raw appends every unused argument as a positional var,
// so the bindings are passed only when the query has any.
func reportStatement(db *gorm.DB, q report.Query) *gorm.DB {
	if len(q.Params) == 0 {
		return db.Raw(q.SQL)
	}

	return db.Raw(q.SQL, q.Params)
}
