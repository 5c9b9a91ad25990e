// Package keyvalue parses the compact `key=value [key=value ...]` syntax
// used to prefill primary keys and seed items. Values follow the same typing
// rules as query expressions: quoted text is always a string, bare words are
// classified as boolean, null, number or string.
package keyvalue

import (
	"github.com/tablescope/dynaquery/expression"
)

// Pair is one parsed key=value binding.
type Pair struct {
	Key   string
	Value expression.Literal
}

type parser struct {
	input string
	pos   int
}

// Parse splits input into ordered key=value pairs.
func Parse(input string) ([]Pair, error) {
	p := &parser{input: input}
	pairs := []Pair{}

	for {
		p.skipWhitespace()

		if p.done() {
			return pairs, nil
		}

		pair, err := p.parsePair()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)
	}
}

// ParseMap parses input into a map. Later duplicates of a key win.
func ParseMap(input string) (map[string]expression.Literal, error) {
	pairs, err := Parse(input)
	if err != nil {
		return nil, err
	}

	m := map[string]expression.Literal{}
	for _, pair := range pairs {
		m[pair.Key] = pair.Value
	}

	return m, nil
}

func (p *parser) parsePair() (Pair, error) {
	key, _, err := p.parseToken()
	if err != nil {
		return Pair{}, err
	}

	if p.done() || p.input[p.pos] != '=' {
		return Pair{}, &expression.ParseError{Pos: p.pos, Expected: "= after key " + key}
	}

	p.pos++ // skip '='
	p.skipWhitespace()

	if p.done() {
		return Pair{}, &expression.ParseError{Pos: p.pos, Expected: "value"}
	}

	text, quoted, err := p.parseToken()
	if err != nil {
		return Pair{}, err
	}

	value := expression.String(text)
	if !quoted {
		value = expression.InferText(text)
	}

	return Pair{Key: key, Value: value}, nil
}

// parseToken reads a quoted or bare token. Bare tokens run to the next
// whitespace or '='; quoted tokens keep their content verbatim, with no
// escape processing.
func (p *parser) parseToken() (string, bool, error) {
	ch := p.input[p.pos]
	if ch == '"' || ch == '\'' {
		text, err := p.parseQuoted(ch)

		return text, true, err
	}

	start := p.pos
	for !p.done() && !isWhitespace(p.input[p.pos]) && p.input[p.pos] != '=' {
		p.pos++
	}

	if p.pos == start {
		return "", false, &expression.ParseError{Pos: start, Expected: "token", Got: string(ch)}
	}

	return p.input[start:p.pos], false, nil
}

func (p *parser) parseQuoted(quote byte) (string, error) {
	start := p.pos
	p.pos++ // skip opening quote

	from := p.pos
	for !p.done() && p.input[p.pos] != quote {
		p.pos++
	}

	if p.done() {
		return "", &expression.LexError{Pos: start, Quote: quote}
	}

	text := p.input[from:p.pos]
	p.pos++ // skip closing quote

	return text, nil
}

func (p *parser) skipWhitespace() {
	for !p.done() && isWhitespace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) done() bool {
	return p.pos >= len(p.input)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
