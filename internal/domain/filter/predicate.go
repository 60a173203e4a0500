package filter

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Column is a structural SQL reference. Only these constants are ever written into predicate text.
type Column string

const (
	ColumnLocation     Column = "f.location"
	ColumnProviderType Column = "f.provider_type"
	ColumnFoodType     Column = "f.food_type"
	ColumnExpiryDate   Column = "f.expiry_date"
	ColumnClaimDate    Column = "CAST(c.timestamp AS date)"
	ColumnClaimStatus  Column = "c.status"
)

// Parameter names. Scope, window, expiry window and today never share a name.
const (
	ParamCity         = "f_city"
	ParamProviderType = "f_ptype"
	ParamFoodType     = "f_food"
	ParamFrom         = "d_from"
	ParamTo           = "d_to"
	ParamExpiryFrom   = "w_from"
	ParamExpiryTo     = "w_to"
	ParamToday        = "today"
	ParamClaimStatus  = "c_status"
)

// ErrParamCollision is returned by Bind when two predicates bind the same name to different values.
var ErrParamCollision = errors.New("parameter bound twice with different values")

// Predicate is a conjunctive SQL fragment with its named bindings (@name placeholders).
type Predicate struct {
	SQL    string
	Params map[string]any
}

// True is the predicate that matches every row.
func True() Predicate {
	return Predicate{SQL: "1=1", Params: map[string]any{}}
}

// And joins predicates into a single conjunction. Bindings are merged with Bind semantics.
func And(preds ...Predicate) (Predicate, error) {
	params, err := Bind(preds...)
	if err != nil {
		return Predicate{}, err
	}

	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		parts = append(parts, "("+p.SQL+")")
	}
	if len(parts) == 0 {
		return True(), nil
	}

	return Predicate{SQL: strings.Join(parts, " AND "), Params: params}, nil
}

// Bind merges the bindings of several predicates into one parameter map for a single query call.
func Bind(preds ...Predicate) (map[string]any, error) {
	merged := make(map[string]any)
	for _, p := range preds {
		for _, name := range slices.Sorted(maps.Keys(p.Params)) {
			value := p.Params[name]
			if existing, ok := merged[name]; ok && !reflect.DeepEqual(existing, value) {
				return nil, errors.Wrapf(ErrParamCollision, "parameter %q", name)
			}
			merged[name] = value
		}
	}

	return merged, nil
}

// ClaimStatusIs renders "claim status equals status" over claim_data aliased as c.
func ClaimStatusIs(status string) Predicate {
	var b predicateBuilder
	b.equal(ColumnClaimStatus, ParamClaimStatus, status)

	return b.build()
}

type equality struct {
	column Column
	param  string
	value  string
}

type predicateBuilder struct {
	clauses []string
	params  map[string]any
}

func (b *predicateBuilder) bind(name string, value any) string {
	if b.params == nil {
		b.params = make(map[string]any)
	}
	b.params[name] = value

	return "@" + name
}

func (b *predicateBuilder) equal(column Column, param, value string) {
	b.clauses = append(b.clauses, fmt.Sprintf("%s = %s", column, b.bind(param, value)))
}

func (b *predicateBuilder) dateBetween(column Column, fromParam, toParam string, from, to time.Time) {
	b.clauses = append(b.clauses, fmt.Sprintf("%s BETWEEN CAST(%s AS date) AND CAST(%s AS date)",
		column, b.bind(fromParam, from.Format(DateLayout)), b.bind(toParam, to.Format(DateLayout))))
}

func (b *predicateBuilder) dateBefore(column Column, param string, day time.Time) {
	b.clauses = append(b.clauses, fmt.Sprintf("%s < CAST(%s AS date)", column, b.bind(param, dateOf(day).Format(DateLayout))))
}

func (b *predicateBuilder) build() Predicate {
	if len(b.clauses) == 0 {
		return True()
	}

	return Predicate{SQL: strings.Join(b.clauses, " AND "), Params: b.params}
}
