package xpattern

import "strings"

// Lexer splits a date-time pattern into tokens.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the given pattern.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// NextToken returns the next token from the pattern.
func (l *Lexer) NextToken() Token {
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == '[':
		l.pos++
		return Token{Type: TokenOptionalStart, Literal: "[", Pos: start}
	case ch == ']':
		l.pos++
		return Token{Type: TokenOptionalEnd, Literal: "]", Pos: start}
	case ch == '\'':
		return l.readQuoted()
	case isReserved(ch):
		l.pos++
		return Token{Type: TokenError, Literal: string(ch), Pos: start, Value: "reserved character " + string(ch)}
	case isLetter(ch):
		for l.pos < len(l.input) && l.input[l.pos] == ch {
			l.pos++
		}
		return Token{Type: TokenLetters, Literal: l.input[start:l.pos], Pos: start}
	default:
		for l.pos < len(l.input) && isPlain(l.input[l.pos]) {
			l.pos++
		}
		text := l.input[start:l.pos]
		return Token{Type: TokenLiteral, Literal: text, Pos: start, Value: text}
	}
}

func (l *Lexer) readQuoted() Token {
	start := l.pos
	l.pos++ // opening quote

	// '' outside a quoted section is an escaped quote
	if l.peek() == '\'' {
		l.pos++
		return Token{Type: TokenLiteral, Literal: "''", Pos: start, Value: "'"}
	}

	var text strings.Builder
	for {
		if l.pos >= len(l.input) {
			return Token{Type: TokenError, Literal: l.input[start:], Pos: start, Value: "unterminated quoted literal"}
		}
		ch := l.input[l.pos]
		l.pos++
		if ch != '\'' {
			text.WriteByte(ch)
			continue
		}
		if l.peek() == '\'' {
			text.WriteByte('\'')
			l.pos++
			continue
		}
		break
	}

	return Token{Type: TokenLiteral, Literal: l.input[start:l.pos], Pos: start, Value: text.String()}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isReserved(ch byte) bool {
	return ch == '#' || ch == '{' || ch == '}'
}

func isPlain(ch byte) bool {
	return !isLetter(ch) && !isReserved(ch) && ch != '\'' && ch != '[' && ch != ']'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
