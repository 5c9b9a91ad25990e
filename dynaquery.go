// Package dynaquery compiles compact, human friendly query strings into
// wire-level DynamoDB read requests: a key lookup when the expression pins a
// partition, a filtered scan otherwise.
//
// Compilation is a pure function of the input text and a key-schema
// snapshot. It performs no I/O and holds no state, so it is safe to call
// concurrently, one compilation per keystroke if need be. Executing the
// compiled request is the caller's business; the awsv1 and awsv2 packages
// map the neutral descriptor onto each SDK generation's input structs.
package dynaquery

import (
	"strings"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/planner"
	"github.com/tablescope/dynaquery/request"
	"github.com/tablescope/dynaquery/schema"
)

// Compile parses input, plans it against the table's key schema and lowers
// the plan into a request descriptor.
//
// A blank input compiles to an unfiltered scan. When the whole input is a
// single value token and does not parse as an expression, it is taken as a
// hash-key lookup: `USER#1` behaves like hashKey = "USER#1". A failed parse
// of anything else surfaces the original *expression.LexError or
// *expression.ParseError.
func Compile(input string, table schema.Table, opts ...request.Option) (*request.Request, error) {
	expr, err := ParseQuery(input, table)
	if err != nil {
		return nil, err
	}

	plan := planner.Build(expr, table)

	return request.Lower(plan, table, opts...), nil
}

// ParseQuery parses input into an expression, applying the hash-key
// shortcut. A blank input returns (nil, nil): no predicate.
func ParseQuery(input string, table schema.Table) (expression.Expr, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	expr, err := expression.Parse(input)
	if err == nil {
		return expr, nil
	}

	// The shortcut is a fallback only: it is tried after a full parse has
	// failed, and only for a lone value token. A backtick path or any
	// multi-token input keeps the parse error.
	if shortcut, ok := hashKeyShortcut(input, table); ok {
		return shortcut, nil
	}

	return nil, err
}

func hashKeyShortcut(input string, table schema.Table) (expression.Expr, bool) {
	tokens, err := expression.Tokenize(input)
	if err != nil || len(tokens) != 1 || !tokens[0].IsValue() {
		return nil, false
	}

	if table.HashKey.Name == "" {
		return nil, false
	}

	return &expression.Compare{
		Path:  expression.Path{Name: table.HashKey.Name},
		Op:    expression.Equal,
		Value: expression.Infer(tokens[0]),
	}, true
}
