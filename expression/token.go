package expression

// TokenType represents the type of a token.
type TokenType string

// Token is a single lexeme of the query language. Pos is the byte offset of
// the first character of the token in the original input.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

const (
	// ILLEGAL is an unrecognized character
	ILLEGAL TokenType = "ILLEGAL"
	// EOF marks the end of the input
	EOF TokenType = "EOF"

	// IDENT is a bare word: attribute name or unquoted value
	IDENT TokenType = "IDENT"
	// PATH is a backtick-quoted attribute name
	PATH TokenType = "PATH"
	// STRING is a single or double quoted string
	STRING TokenType = "STRING"
	// NUMBER is a numeric token, the literal keeps the decimal text
	NUMBER TokenType = "NUMBER"
	// TRUE boolean keyword
	TRUE TokenType = "TRUE"
	// FALSE boolean keyword
	FALSE TokenType = "FALSE"
	// NULL null keyword
	NULL TokenType = "NULL"

	// LT comparator less than
	LT TokenType = "<"
	// LTE comparator less than or equal
	LTE TokenType = "<="
	// GT comparator greater than
	GT TokenType = ">"
	// GTE comparator greater than or equal
	GTE TokenType = ">="
	// EQ comparator equal
	EQ TokenType = "="
	// NotEQ comparator not equal, written <> or !=
	NotEQ TokenType = "<>"

	// COMMA delimiter used in IN lists and function arguments
	COMMA TokenType = ","
	// LPAREN left parenthesis
	LPAREN TokenType = "("
	// RPAREN right parenthesis
	RPAREN TokenType = ")"

	// AND logical conjunction keyword
	AND TokenType = "AND"
	// OR logical disjunction keyword
	OR TokenType = "OR"
	// NOT logical negation keyword
	NOT TokenType = "NOT"
	// BETWEEN range comparison keyword
	BETWEEN TokenType = "BETWEEN"
	// IN membership comparison keyword
	IN TokenType = "IN"
)

var keywords = map[string]TokenType{
	"AND":     AND,
	"OR":      OR,
	"NOT":     NOT,
	"BETWEEN": BETWEEN,
	"IN":      IN,
	"TRUE":    TRUE,
	"FALSE":   FALSE,
	"NULL":    NULL,
}

// IsValue reports whether the token can stand in a value position.
func (t Token) IsValue() bool {
	switch t.Type {
	case IDENT, STRING, NUMBER, TRUE, FALSE, NULL:
		return true
	}

	return false
}
