package expression

import "fmt"

// LexError reports an unterminated quoted string or backtick path. Pos is the
// byte offset of the opening quote.
type LexError struct {
	Pos   int
	Quote byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unterminated %c at position %d", e.Quote, e.Pos)
}

// ParseError reports an unexpected token or an unexpected end of input. Pos
// is the byte offset of the offending token so callers can highlight it.
type ParseError struct {
	Pos      int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("expected %s but reached end of input at position %d", e.Expected, e.Pos)
	}

	return fmt.Sprintf("expected %s but got %q at position %d", e.Expected, e.Got, e.Pos)
}
