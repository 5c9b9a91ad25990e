package keyvalue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tablescope/dynaquery/expression"
)

func TestParse(t *testing.T) {
	c := require.New(t)

	pairs, err := Parse(`PK=USER#123 SK="ORDER#1" count=3 active=true note=null`)
	c.NoError(err)

	c.Equal([]Pair{
		{Key: "PK", Value: expression.String("USER#123")},
		{Key: "SK", Value: expression.String("ORDER#1")},
		{Key: "count", Value: expression.Number("3")},
		{Key: "active", Value: expression.Boolean(true)},
		{Key: "note", Value: expression.Null()},
	}, pairs)
}

func TestParseQuotedTyping(t *testing.T) {
	c := require.New(t)

	// quoted values are strings no matter what they contain
	pairs, err := Parse(`a="123" b='true' c=123`)
	c.NoError(err)

	c.Equal(expression.String("123"), pairs[0].Value)
	c.Equal(expression.String("true"), pairs[1].Value)
	c.Equal(expression.Number("123"), pairs[2].Value)
}

func TestParseQuotedKey(t *testing.T) {
	c := require.New(t)

	pairs, err := Parse(`"weird key"=1`)
	c.NoError(err)
	c.Equal("weird key", pairs[0].Key)
}

func TestParseSpacingAroundValue(t *testing.T) {
	c := require.New(t)

	pairs, err := Parse("a= 1\tb=2\n")
	c.NoError(err)
	c.Len(pairs, 2)
	c.Equal(expression.Number("1"), pairs[0].Value)
}

func TestParseMap(t *testing.T) {
	c := require.New(t)

	m, err := ParseMap(`a=1 b=x a=2`)
	c.NoError(err)

	c.Equal(map[string]expression.Literal{
		"a": expression.Number("2"),
		"b": expression.String("x"),
	}, m)
}

func TestParseEmpty(t *testing.T) {
	c := require.New(t)

	pairs, err := Parse("   ")
	c.NoError(err)
	c.Empty(pairs)
}

func TestParseErrors(t *testing.T) {
	c := require.New(t)

	_, err := Parse(`key`)
	c.Error(err)
	c.IsType(&expression.ParseError{}, err)

	_, err = Parse(`key=`)
	c.Error(err)

	_, err = Parse(`key="unterminated`)
	c.Error(err)
	c.IsType(&expression.LexError{}, err)
}
