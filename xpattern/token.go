package xpattern

// TokenType represents the type of a token in a date-time pattern.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenLetters        // run of one repeated pattern letter, e.g. yyyy
	TokenLiteral        // plain or quoted literal text
	TokenOptionalStart  // [
	TokenOptionalEnd    // ]
	TokenError          // lexer error
)

var tokenNames = map[TokenType]string{
	TokenEOF:           "EOF",
	TokenLetters:       "LETTERS",
	TokenLiteral:       "LITERAL",
	TokenOptionalStart: "[",
	TokenOptionalEnd:   "]",
	TokenError:         "ERROR",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token of a pattern.
// For literals Value holds the unquoted text, for errors the message.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
	Value   any
}
