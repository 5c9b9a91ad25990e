package expression

// Lexer splits a query string into tokens.
type Lexer struct {
	input    string
	position int
	// current position in input (points to current char)
	readPosition int
	// current reading position in input (after current char)
	ch byte // current char under examination
}

var singleChar = map[byte]TokenType{
	'=': EQ,
	'(': LPAREN,
	')': RPAREN,
	',': COMMA,
}

// NewLexer creates a new lexer over input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()

	return l
}

// Tokenize consumes the whole input and returns the token sequence without a
// trailing EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	tokens := []Token{}

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		if tok.Type == EOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) manageLessThanToken() Token {
	pos := l.position

	switch l.peekChar() {
	case '>':
		l.readChar()
		return Token{Type: NotEQ, Literal: "<>", Pos: pos}
	case '=':
		l.readChar()
		return Token{Type: LTE, Literal: "<=", Pos: pos}
	default:
		return Token{Type: LT, Literal: "<", Pos: pos}
	}
}

func (l *Lexer) manageGreaterThanToken() Token {
	pos := l.position

	if l.peekChar() == '=' {
		l.readChar()
		return Token{Type: GTE, Literal: ">=", Pos: pos}
	}

	return Token{Type: GT, Literal: ">", Pos: pos}
}

// NextToken looks up the next token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if single, ok := singleChar[l.ch]; ok {
		tok := Token{Type: single, Literal: string(l.ch), Pos: l.position}
		l.readChar()

		return tok, nil
	}

	var tok Token

	switch l.ch {
	case '<':
		tok = l.manageLessThanToken()
	case '>':
		tok = l.manageGreaterThanToken()
	case '!':
		pos := l.position
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NotEQ, Literal: "!=", Pos: pos}
		} else {
			tok = Token{Type: ILLEGAL, Literal: "!", Pos: pos}
		}
	case '"', '\'':
		return l.readString(STRING, l.ch)
	case '`':
		return l.readString(PATH, l.ch)
	case 0:
		return Token{Type: EOF, Pos: l.position}, nil
	default:
		if isBareWordStart(l.ch) || l.ch == '-' && isDigit(l.peekChar()) {
			return l.readBareWord(), nil
		}

		tok = Token{Type: ILLEGAL, Literal: string(l.ch), Pos: l.position}
	}

	l.readChar()

	return tok, nil
}

// readString consumes a quoted token. The quote characters are dropped and no
// escape processing is applied: the token ends at the next occurrence of the
// opening quote.
func (l *Lexer) readString(typ TokenType, quote byte) (Token, error) {
	start := l.position
	l.readChar() // skip opening quote

	position := l.position
	for l.ch != quote {
		if l.ch == 0 {
			return Token{}, &LexError{Pos: start, Quote: quote}
		}

		l.readChar()
	}

	tok := Token{Type: typ, Literal: l.input[position:l.position], Pos: start}
	l.readChar() // skip closing quote

	return tok, nil
}

// readBareWord consumes an unquoted run and classifies it as a keyword, a
// number or an identifier. A '+' or '-' is part of the run only as an
// exponent sign, so IN lists such as (1,-2) still split on the comma.
// '#' and ':' join a word only after its first character: composite key
// values such as USER#123 stay one token, while the placeholder spellings
// #name and :value still lex as ILLEGAL.
func (l *Lexer) readBareWord() Token {
	start := l.position

	if l.ch == '-' {
		l.readChar()
	}

	for {
		if isBareWordChar(l.ch) {
			l.readChar()
			continue
		}

		if (l.ch == '+' || l.ch == '-') && l.position > start {
			prev := l.input[l.position-1]
			if prev == 'e' || prev == 'E' {
				l.readChar()
				continue
			}
		}

		break
	}

	return classifyBareWord(l.input[start:l.position], start)
}

func classifyBareWord(word string, pos int) Token {
	if typ, ok := keywords[toUpper(word)]; ok {
		return Token{Type: typ, Literal: word, Pos: pos}
	}

	if isNumeric(word) {
		return Token{Type: NUMBER, Literal: word, Pos: pos}
	}

	return Token{Type: IDENT, Literal: word, Pos: pos}
}

func isBareWordStart(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isBareWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_' || ch == '.' || ch == '#' || ch == ':'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func toUpper(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if 'a' <= ch && ch <= 'z' {
			b[i] = ch - 'a' + 'A'
		}
	}

	return string(b)
}

// isNumeric reports whether s matches -?digits(.digits)?([eE][+-]?digits)?.
func isNumeric(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if digits == 0 {
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++

		digits = 0
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}

		if digits == 0 {
			return false
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++

		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}

		digits = 0
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}

		if digits == 0 {
			return false
		}
	}

	return i == len(s)
}
