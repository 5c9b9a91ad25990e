package expression

import "strings"

// LiteralKind discriminates the closed set of literal value types.
type LiteralKind string

const (
	// KindString literal kind for strings
	KindString LiteralKind = "string"
	// KindNumber literal kind for numbers
	KindNumber LiteralKind = "number"
	// KindBoolean literal kind for booleans
	KindBoolean LiteralKind = "boolean"
	// KindNull literal kind for null
	KindNull LiteralKind = "null"
)

// Literal is a typed leaf value of the AST. Text carries the string content
// for KindString and the decimal text for KindNumber, so numeric values are
// forwarded to the wire protocol exactly as typed. Literal is comparable and
// two literals are the same value iff they are equal.
type Literal struct {
	Kind LiteralKind
	Text string
	Bool bool
}

// String builds a string literal.
func String(text string) Literal {
	return Literal{Kind: KindString, Text: text}
}

// Number builds a number literal from its decimal text.
func Number(text string) Literal {
	return Literal{Kind: KindNumber, Text: text}
}

// Boolean builds a boolean literal.
func Boolean(b bool) Literal {
	return Literal{Kind: KindBoolean, Bool: b}
}

// Null builds the null literal.
func Null() Literal {
	return Literal{Kind: KindNull}
}

// Infer classifies a token in value position as a typed literal. Quoted
// strings stay strings even when their content looks numeric; bare words were
// already classified by the lexer with the same rules (true/false, null,
// numeric grammar) and default to a verbatim string. This is the single
// typing rule set: the parser, the hash-key shortcut and the keyvalue parser
// all defer to it.
func Infer(tok Token) Literal {
	switch tok.Type {
	case STRING:
		return String(tok.Literal)
	case NUMBER:
		return Number(tok.Literal)
	case TRUE:
		return Boolean(true)
	case FALSE:
		return Boolean(false)
	case NULL:
		return Null()
	default:
		return String(tok.Literal)
	}
}

// InferText applies the bare-word typing rules to raw text: true/false and
// null case-insensitively, then the numeric grammar, then a verbatim string.
func InferText(text string) Literal {
	switch toUpper(text) {
	case "TRUE":
		return Boolean(true)
	case "FALSE":
		return Boolean(false)
	case "NULL":
		return Null()
	}

	if isNumeric(text) {
		return Number(text)
	}

	return String(text)
}

func (l Literal) operandNode() {}

func (l Literal) String() string {
	switch l.Kind {
	case KindNumber:
		return l.Text
	case KindBoolean:
		if l.Bool {
			return "true"
		}

		return "false"
	case KindNull:
		return "null"
	default:
		if strings.Contains(l.Text, `"`) {
			return "'" + l.Text + "'"
		}

		return `"` + l.Text + `"`
	}
}
