package expression

// Parser consumes a token sequence into an AST. Precedence, low to high:
// OR < AND < NOT < comparison/function/group. AND and OR are left
// associative; NOT applies to the tightest following atom or group.
type Parser struct {
	tokens []Token
	pos    int
	end    int // byte offset just past the input, for end-of-input errors
}

// Parse tokenizes input and parses it into a single expression. A blank
// input returns (nil, nil): it denotes "no predicate", not an error.
func Parse(input string) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	p := NewParser(tokens, len(input))

	return p.ParseExpression()
}

// NewParser creates a parser over an already tokenized input. end is the
// input length in bytes.
func NewParser(tokens []Token, end int) *Parser {
	return &Parser{tokens: tokens, end: end}
}

// ParseExpression parses the token sequence. Every token must be consumed:
// trailing tokens after a well-formed expression are an error.
func (p *Parser) ParseExpression() (Expr, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := p.cur(); tok.Type != EOF {
		return nil, p.errorExpected("end of input", tok)
	}

	return expr, nil
}

func (p *Parser) cur() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF, Pos: p.end}
	}

	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.cur()
	p.pos++

	return tok
}

func (p *Parser) errorExpected(expected string, got Token) error {
	err := &ParseError{Pos: got.Pos, Expected: expected}
	if got.Type != EOF {
		err.Got = got.Literal
	}

	return err
}

func (p *Parser) expect(typ TokenType, expected string) (Token, error) {
	tok := p.cur()
	if tok.Type != typ {
		return Token{}, p.errorExpected(expected, tok)
	}

	return p.next(), nil
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == OR {
		p.next()

		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}

		left = &Or{Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.cur().Type == AND {
		p.next()

		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}

		left = &And{Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseNot() (Expr, error) {
	if p.cur().Type != NOT {
		return p.parseAtom()
	}

	p.next()

	inner, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	return &Not{Expr: inner}, nil
}

func (p *Parser) parseAtom() (Expr, error) {
	tok := p.cur()

	switch tok.Type {
	case LPAREN:
		p.next()

		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(RPAREN, ")"); err != nil {
			return nil, err
		}

		return expr, nil
	case IDENT:
		if IsFunction(tok.Literal) && p.peekType() == LPAREN {
			return p.parseCall()
		}

		return p.parseCondition()
	case PATH:
		return p.parseCondition()
	default:
		return nil, p.errorExpected("expression", tok)
	}
}

func (p *Parser) peekType() TokenType {
	if p.pos+1 >= len(p.tokens) {
		return EOF
	}

	return p.tokens[p.pos+1].Type
}

// parseCondition parses a path-led predicate: comparison, BETWEEN or IN.
func (p *Parser) parseCondition() (Expr, error) {
	path := Path{Name: p.next().Literal}

	tok := p.next()
	switch tok.Type {
	case EQ, NotEQ, LT, LTE, GT, GTE:
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		return &Compare{Path: path, Op: comparator(tok.Type), Value: value}, nil
	case BETWEEN:
		return p.parseBetween(path)
	case IN:
		return p.parseIn(path)
	default:
		return nil, p.errorExpected("comparison operator, BETWEEN or IN", tok)
	}
}

// comparator maps an operator token to its canonical form: != becomes <>.
func comparator(typ TokenType) Operator {
	if typ == NotEQ {
		return NotEqual
	}

	return Operator(typ)
}

func (p *Parser) parseBetween(path Path) (Expr, error) {
	low, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(AND, "AND"); err != nil {
		return nil, err
	}

	high, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &Between{Path: path, Low: low, High: high}, nil
}

func (p *Parser) parseIn(path Path) (Expr, error) {
	if _, err := p.expect(LPAREN, "("); err != nil {
		return nil, err
	}

	values := []Literal{}

	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		values = append(values, value)

		tok := p.next()
		if tok.Type == RPAREN {
			break
		}

		if tok.Type != COMMA {
			return nil, p.errorExpected(", or )", tok)
		}
	}

	return &In{Path: path, Values: values}, nil
}

func (p *Parser) parseCall() (Expr, error) {
	name := lower(p.next().Literal)
	shape := functions[name]

	if _, err := p.expect(LPAREN, "("); err != nil {
		return nil, err
	}

	args := []Operand{}

	for i, kind := range shape {
		if i > 0 {
			if _, err := p.expect(COMMA, ","); err != nil {
				return nil, err
			}
		}

		arg, err := p.parseArg(kind)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	if _, err := p.expect(RPAREN, ")"); err != nil {
		return nil, err
	}

	return &Call{Name: name, Args: args}, nil
}

func (p *Parser) parseArg(kind argKind) (Operand, error) {
	tok := p.cur()

	switch kind {
	case argPath:
		if tok.Type != IDENT && tok.Type != PATH {
			return nil, p.errorExpected("attribute path", tok)
		}

		return Path{Name: p.next().Literal}, nil
	case argValue:
		return p.parseValue()
	default:
		if tok.Type == PATH {
			return Path{Name: p.next().Literal}, nil
		}

		return p.parseValue()
	}
}

// parseValue consumes a token in value position and types it.
func (p *Parser) parseValue() (Literal, error) {
	tok := p.cur()
	if !tok.IsValue() {
		return Literal{}, p.errorExpected("value", tok)
	}

	return Infer(p.next()), nil
}
