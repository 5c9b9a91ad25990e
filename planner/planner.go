// Package planner decides whether a parsed query expression can be served
// by an indexed key lookup or has to fall back to a full table scan.
package planner

import (
	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/schema"
)

// Plan is the outcome of planning: a *Query or a *Scan. Planning never
// fails; an expression with no usable key pattern becomes a Scan.
type Plan interface {
	planNode()
}

// Query is an indexed lookup: a hash-key equality plus an optional
// compatible sort-key condition. Residual keeps the conjuncts not covered
// by the key condition; the baseline lowering drops them in query mode.
type Query struct {
	// IndexName is empty for a base-table query.
	IndexName     string
	HashCondition *expression.Compare
	// SortCondition is a *expression.Compare (=, <, <=, >, >=), a
	// *expression.Between or a begins_with *expression.Call, or nil.
	SortCondition expression.Expr
	Residual      []expression.Expr
}

func (q *Query) planNode() {}

// Scan is a full-table read. Filter is nil for a blank query.
type Scan struct {
	Filter expression.Expr
}

func (s *Scan) planNode() {}

// Build plans expr against the table's key schema. The base table is
// preferred whenever its hash key appears as a top-level equality; a local
// secondary index takes over only when it can serve a sort-key condition the
// table cannot. Otherwise global secondary indexes are tried in declaration
// order, then local ones.
func Build(expr expression.Expr, table schema.Table) Plan {
	if expr == nil {
		return &Scan{}
	}

	conjuncts := flatten(expr)

	if plan, ok := tryKey(conjuncts, "", table.HashKey, table.SortKey); ok {
		query := plan.(*Query)
		if query.SortCondition != nil {
			return query
		}

		// an LSI shares the table's hash key, so it only beats the base
		// table when its sort key is the one the expression constrains
		for _, idx := range table.LocalSecondaryIndexes {
			if p, ok := tryKey(conjuncts, idx.Name, idx.HashKey, idx.SortKey); ok {
				if local := p.(*Query); local.SortCondition != nil {
					return local
				}
			}
		}

		return query
	}

	for _, idx := range table.Indexes() {
		if plan, ok := tryKey(conjuncts, idx.Name, idx.HashKey, idx.SortKey); ok {
			return plan
		}
	}

	return &Scan{Filter: expr}
}

// flatten decomposes the top-level conjunction. Any root other than And is
// a single conjunct, so OR and NOT at the top level keep the whole
// expression out of key-condition use.
func flatten(expr expression.Expr) []expression.Expr {
	and, ok := expr.(*expression.And)
	if !ok {
		return []expression.Expr{expr}
	}

	return append(flatten(and.Left), flatten(and.Right)...)
}

func tryKey(conjuncts []expression.Expr, indexName string, hashKey schema.Key, sortKey *schema.Key) (Plan, bool) {
	hashAt := -1

	for i, c := range conjuncts {
		if isHashEquality(c, hashKey.Name) {
			hashAt = i
			break
		}
	}

	if hashAt < 0 {
		return nil, false
	}

	query := &Query{
		IndexName:     indexName,
		HashCondition: conjuncts[hashAt].(*expression.Compare),
	}

	sortAt := -1
	if sortKey != nil {
		for i, c := range conjuncts {
			if i != hashAt && isSortCondition(c, sortKey.Name) {
				sortAt = i
				query.SortCondition = c

				break
			}
		}
	}

	for i, c := range conjuncts {
		if i != hashAt && i != sortAt {
			query.Residual = append(query.Residual, c)
		}
	}

	return query, true
}

func isHashEquality(expr expression.Expr, name string) bool {
	cmp, ok := expr.(*expression.Compare)

	return ok && cmp.Op == expression.Equal && cmp.Path.Name == name
}

// isSortCondition reports whether expr is usable as the sort-key half of a
// key condition: an ordered comparison, a BETWEEN or a begins_with on name.
func isSortCondition(expr expression.Expr, name string) bool {
	switch e := expr.(type) {
	case *expression.Compare:
		return e.Path.Name == name && e.Op != expression.NotEqual
	case *expression.Between:
		return e.Path.Name == name
	case *expression.Call:
		if e.Name != "begins_with" || len(e.Args) != 2 {
			return false
		}

		path, ok := e.Args[0].(expression.Path)
		if !ok || path.Name != name {
			return false
		}

		_, ok = e.Args[1].(expression.Literal)

		return ok
	}

	return false
}
