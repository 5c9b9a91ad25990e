package dynaquery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/request"
	"github.com/tablescope/dynaquery/schema"
)

func testTable() schema.Table {
	return schema.Table{
		Name:    "orders",
		HashKey: schema.Key{Name: "PK", Type: schema.KeyTypeString},
		SortKey: &schema.Key{Name: "SK", Type: schema.KeyTypeString},
		GlobalSecondaryIndexes: []schema.SecondaryIndex{
			{
				Name:    "status-index",
				Type:    schema.IndexTypeGlobal,
				HashKey: schema.Key{Name: "status", Type: schema.KeyTypeString},
			},
		},
	}
}

func TestCompileQuery(t *testing.T) {
	c := require.New(t)

	req, err := Compile(`PK = "USER#123" AND begins_with(SK, "ORDER#")`, testTable())
	c.NoError(err)

	c.Equal(request.KindQuery, req.Kind)
	c.Equal("orders", req.TableName)
	c.Equal("#n0 = :v0 AND begins_with(#n1, :v1)", req.KeyConditionExpression)
	c.Equal(map[string]string{"#n0": "PK", "#n1": "SK"}, req.Names)
}

func TestCompileScan(t *testing.T) {
	c := require.New(t)

	req, err := Compile(`note = "active"`, testTable())
	c.NoError(err)

	c.Equal(request.KindScan, req.Kind)
	c.Equal("#n0 = :v0", req.FilterExpression)
	c.Equal(map[string]string{"#n0": "note"}, req.Names)
}

func TestCompileOrDisqualifiesQuery(t *testing.T) {
	c := require.New(t)

	req, err := Compile(`PK = "USER#123" OR SK = "x"`, testTable())
	c.NoError(err)

	c.Equal(request.KindScan, req.Kind)
	c.Equal(`(#n0 = :v0) OR (#n1 = :v1)`, req.FilterExpression)
}

func TestCompileBlank(t *testing.T) {
	c := require.New(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		req, err := Compile(input, testTable())
		c.NoError(err)

		c.Equal(request.KindScan, req.Kind)
		c.Empty(req.FilterExpression)
		c.Nil(req.Names)
		c.Nil(req.Values)
	}
}

func TestHashKeyShortcut(t *testing.T) {
	c := require.New(t)

	// a lone string token becomes a hash key lookup
	req, err := Compile(`foo`, testTable())
	c.NoError(err)
	c.Equal(request.KindQuery, req.Kind)
	c.Equal("#n0 = :v0", req.KeyConditionExpression)
	c.Equal(map[string]string{"#n0": "PK"}, req.Names)
	c.Equal(expression.String("foo"), req.Values[":v0"])

	// composite key values lex as a single token
	req, err = Compile(`USER#1`, testTable())
	c.NoError(err)
	c.Equal(request.KindQuery, req.Kind)
	c.Equal(expression.String("USER#1"), req.Values[":v0"])

	// lone tokens keep their inferred type
	req, err = Compile(`123`, testTable())
	c.NoError(err)
	c.Equal(expression.Number("123"), req.Values[":v0"])

	req, err = Compile(`"123"`, testTable())
	c.NoError(err)
	c.Equal(expression.String("123"), req.Values[":v0"])
}

func TestShortcutDoesNotFire(t *testing.T) {
	c := require.New(t)

	// a backtick path is not a value token
	_, err := Compile("`other field`", testTable())
	c.Error(err)
	c.IsType(&expression.ParseError{}, err)

	// multi-token garbage keeps its parse error
	_, err = Compile(`foo bar`, testTable())
	c.Error(err)

	// normal parsing always wins over the shortcut
	req, err := Compile(`status = "active"`, testTable())
	c.NoError(err)
	c.Equal("status-index", req.IndexName)
}

func TestParseQueryShortcutShape(t *testing.T) {
	c := require.New(t)

	expr, err := ParseQuery(`foo`, testTable())
	c.NoError(err)

	want := &expression.Compare{
		Path:  expression.Path{Name: "PK"},
		Op:    expression.Equal,
		Value: expression.String("foo"),
	}
	c.Empty(cmp.Diff(expression.Expr(want), expr))
}

func TestCompileLexError(t *testing.T) {
	c := require.New(t)

	_, err := Compile(`PK = "unterminated`, testTable())
	c.Error(err)

	lexErr, ok := err.(*expression.LexError)
	c.True(ok, "expected *expression.LexError, got %T", err)
	c.Equal(5, lexErr.Pos)
}

func TestCompileResidualFilterOption(t *testing.T) {
	c := require.New(t)

	req, err := Compile(`PK = "p" AND amount > 10`, testTable(), request.WithResidualFilter())
	c.NoError(err)

	c.Equal(request.KindQuery, req.Kind)
	c.Equal("#n1 > :v1", req.FilterExpression)
}
