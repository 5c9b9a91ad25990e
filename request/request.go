// Package request lowers a plan into the attribute-name-alias and
// value-placeholder form required by the wire protocol. It is the only place
// literal values are bound to their typed wire representation.
package request

import (
	"fmt"
	"strings"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/planner"
	"github.com/tablescope/dynaquery/schema"
)

// Kind is the read operation a request compiles to.
type Kind string

const (
	// KindQuery an indexed key lookup
	KindQuery Kind = "query"
	// KindScan a full table scan
	KindScan Kind = "scan"
)

// Request is the compiled read descriptor handed to the client that
// executes it. Names maps #nNN aliases to attribute names, Values maps
// :vNN aliases to typed literals. Both are nil for an unfiltered scan.
type Request struct {
	TableName string
	// IndexName is empty when the base table serves the query.
	IndexName string
	IndexType schema.IndexType
	Kind      Kind

	KeyConditionExpression string
	FilterExpression       string
	Names                  map[string]string
	Values                 map[string]expression.Literal
}

// OperationType is a short human readable summary of the read shape.
func (r *Request) OperationType() string {
	if r.Kind == KindScan {
		return "Scan"
	}

	switch r.IndexType {
	case schema.IndexTypeGlobal:
		return fmt.Sprintf("Query (GSI: %s)", r.IndexName)
	case schema.IndexTypeLocal:
		return fmt.Sprintf("Query (LSI: %s)", r.IndexName)
	default:
		return "Query (Table)"
	}
}

// Option adjusts lowering behavior.
type Option func(*lowerer)

// WithResidualFilter emits the conjuncts left over by key-condition
// extraction as a filter expression on query requests. The default matches
// the documented baseline: residual predicates are dropped in query mode.
func WithResidualFilter() Option {
	return func(l *lowerer) { l.residualFilter = true }
}

// Lower converts the plan into a request descriptor for table.
func Lower(plan planner.Plan, table schema.Table, opts ...Option) *Request {
	l := &lowerer{req: &Request{TableName: table.Name}}
	for _, opt := range opts {
		opt(l)
	}

	switch p := plan.(type) {
	case *planner.Query:
		l.lowerQuery(p, table)
	case *planner.Scan:
		l.req.Kind = KindScan
		if p.Filter != nil {
			l.req.FilterExpression = l.render(p.Filter)
		}
	}

	return l.req
}

type lowerer struct {
	req            *Request
	residualFilter bool
	names          map[string]string
	values         map[expression.Literal]string
}

func (l *lowerer) lowerQuery(q *planner.Query, table schema.Table) {
	l.req.Kind = KindQuery
	l.req.IndexName = q.IndexName

	if idx, ok := table.Index(q.IndexName); ok {
		l.req.IndexType = idx.Type
	}

	parts := []string{l.render(q.HashCondition)}
	if q.SortCondition != nil {
		parts = append(parts, l.render(q.SortCondition))
	}

	l.req.KeyConditionExpression = strings.Join(parts, " AND ")

	if l.residualFilter && len(q.Residual) > 0 {
		filter := l.render(q.Residual[0])
		for _, c := range q.Residual[1:] {
			filter = "(" + filter + ") AND (" + l.render(c) + ")"
		}

		l.req.FilterExpression = filter
	}
}

func (l *lowerer) render(expr expression.Expr) string {
	switch e := expr.(type) {
	case *expression.Compare:
		return l.name(e.Path) + " " + string(e.Op) + " " + l.value(e.Value)
	case *expression.Between:
		return l.name(e.Path) + " BETWEEN " + l.value(e.Low) + " AND " + l.value(e.High)
	case *expression.In:
		values := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			values = append(values, l.value(v))
		}

		return l.name(e.Path) + " IN (" + strings.Join(values, ", ") + ")"
	case *expression.Call:
		args := make([]string, 0, len(e.Args))
		for _, arg := range e.Args {
			args = append(args, l.operand(arg))
		}

		return e.Name + "(" + strings.Join(args, ", ") + ")"
	case *expression.And:
		return "(" + l.render(e.Left) + ") AND (" + l.render(e.Right) + ")"
	case *expression.Or:
		return "(" + l.render(e.Left) + ") OR (" + l.render(e.Right) + ")"
	case *expression.Not:
		return "NOT (" + l.render(e.Expr) + ")"
	}

	return ""
}

func (l *lowerer) operand(op expression.Operand) string {
	if path, ok := op.(expression.Path); ok {
		return l.name(path)
	}

	return l.value(op.(expression.Literal))
}

// name returns the #nNN alias for an attribute name, reusing the alias on
// repeated references to the same name.
func (l *lowerer) name(path expression.Path) string {
	if alias, ok := l.names[path.Name]; ok {
		return alias
	}

	if l.names == nil {
		l.names = map[string]string{}
		l.req.Names = map[string]string{}
	}

	alias := fmt.Sprintf("#n%d", len(l.names))
	l.names[path.Name] = alias
	l.req.Names[alias] = path.Name

	return alias
}

// value returns the :vNN alias for a literal, reusing the alias when the
// same value occurs again.
func (l *lowerer) value(lit expression.Literal) string {
	if alias, ok := l.values[lit]; ok {
		return alias
	}

	if l.values == nil {
		l.values = map[expression.Literal]string{}
		l.req.Values = map[string]expression.Literal{}
	}

	alias := fmt.Sprintf(":v%d", len(l.values))
	l.values[lit] = alias
	l.req.Values[alias] = lit

	return alias
}
