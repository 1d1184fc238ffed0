package xpattern

import (
	"fmt"
	"strings"
)

// Known pattern letters this package does not implement.
const unsupportedLetters = "QqwWYecFDBNAVzOvgp"

// Layout is a compiled date-time pattern. It is immutable and safe for concurrent use.
type Layout struct {
	pattern string
	nodes   []node
	uses    [fieldCount]bool
}

type compiler struct {
	pattern string
	lexer   *Lexer
	stack   [][]node
	uses    [fieldCount]bool
}

// Compile parses a pattern such as "MM/dd/yyyy'T'HH:mm:ss.nxxx" into a Layout.
// The returned error is a *PatternError.
func Compile(pattern string) (*Layout, error) {
	c := &compiler{
		pattern: pattern,
		lexer:   NewLexer(pattern),
		stack:   [][]node{nil},
	}

	for {
		tok := c.lexer.NextToken()

		switch tok.Type {
		case TokenEOF:
			// an unclosed [ runs to the end of the pattern
			for len(c.stack) > 1 {
				c.closeOptional()
			}
			reserveAdjacent(c.stack[0])
			return &Layout{pattern: pattern, nodes: c.stack[0], uses: c.uses}, nil

		case TokenError:
			return nil, c.fail(tok.Pos, "%v", tok.Value)

		case TokenOptionalStart:
			c.stack = append(c.stack, nil)

		case TokenOptionalEnd:
			if len(c.stack) == 1 {
				return nil, c.fail(tok.Pos, "] without previous [")
			}
			c.closeOptional()

		case TokenLiteral:
			c.add(&literalNode{text: tok.Value.(string)})

		case TokenLetters:
			n, err := c.letters(tok)
			if err != nil {
				return nil, err
			}
			c.add(n)
		}
	}
}

// MustCompile is like Compile but panics if the pattern is invalid.
func MustCompile(pattern string) *Layout {
	l, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return l
}

func (c *compiler) add(n node) {
	top := len(c.stack) - 1
	c.stack[top] = append(c.stack[top], n)
}

func (c *compiler) closeOptional() {
	top := len(c.stack) - 1
	nodes := c.stack[top]
	c.stack = c.stack[:top]
	reserveAdjacent(nodes)
	c.add(&optionalNode{nodes: nodes})
}

func (c *compiler) fail(pos int, format string, args ...any) error {
	return &PatternError{Pattern: c.pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (c *compiler) use(fields ...Field) {
	for _, f := range fields {
		c.uses[f] = true
	}
}

func (c *compiler) letters(tok Token) (node, error) {
	ch := tok.Literal[0]
	count := len(tok.Literal)
	tooMany := func() (node, error) {
		return nil, c.fail(tok.Pos, "too many pattern letters: %c", ch)
	}

	switch ch {
	case 'G':
		c.use(FieldEra)
		switch {
		case count <= 3:
			return &textNode{field: FieldEra, names: erasShort}, nil
		case count == 4:
			return &textNode{field: FieldEra, names: erasFull}, nil
		}
		return tooMany()

	case 'u', 'y':
		field := FieldYear
		if ch == 'y' {
			field = FieldYearOfEra
		}
		c.use(field)
		if count == 2 {
			return &reducedNode{field: field}, nil
		}
		if count > 19 {
			return tooMany()
		}
		sign := signNormal
		if count >= 4 {
			sign = signExceedsPad
		}
		return &numberNode{field: field, minWidth: count, maxWidth: 19, sign: sign}, nil

	case 'M', 'L':
		c.use(FieldMonth)
		switch count {
		case 1:
			return &numberNode{field: FieldMonth, minWidth: 1, maxWidth: 2}, nil
		case 2:
			return &numberNode{field: FieldMonth, minWidth: 2, maxWidth: 2}, nil
		case 3:
			return &textNode{field: FieldMonth, names: monthsShort, base: 1}, nil
		case 4:
			return &textNode{field: FieldMonth, names: monthsFull, base: 1}, nil
		}
		return tooMany()

	case 'E':
		c.use(FieldDayOfWeek)
		switch {
		case count <= 3:
			return &textNode{field: FieldDayOfWeek, names: weekdaysShort, base: 1}, nil
		case count == 4:
			return &textNode{field: FieldDayOfWeek, names: weekdaysFull, base: 1}, nil
		}
		return tooMany()

	case 'a':
		if count > 1 {
			return tooMany()
		}
		c.use(FieldAmPm)
		return &textNode{field: FieldAmPm, names: amPm}, nil

	case 'd', 'H', 'k', 'K', 'h', 'm', 's':
		field := twoDigitFields[ch]
		c.use(field)
		switch count {
		case 1:
			return &numberNode{field: field, minWidth: 1, maxWidth: 2}, nil
		case 2:
			return &numberNode{field: field, minWidth: 2, maxWidth: 2}, nil
		}
		return tooMany()

	case 'S':
		if count > 9 {
			return tooMany()
		}
		c.use(FieldNano)
		return &fractionNode{width: count}, nil

	case 'n':
		if count > 9 {
			return tooMany()
		}
		c.use(FieldNano)
		return &numberNode{field: FieldNano, minWidth: count, maxWidth: 9}, nil

	case 'x', 'X':
		if count > 5 {
			return tooMany()
		}
		c.use(FieldOffset)
		n := *offsetStyles[count-1]
		n.zero = zeroDigits[count-1]
		if ch == 'X' {
			n.zero = "Z"
		}
		return &n, nil

	case 'Z':
		c.use(FieldOffset)
		switch {
		case count <= 3:
			return &offsetNode{minutes: mandatory, zero: "+0000"}, nil
		case count == 4:
			return &offsetNode{colon: true, minutes: mandatory, seconds: optional, gmt: true}, nil
		case count == 5:
			return &offsetNode{colon: true, minutes: mandatory, seconds: optional, zero: "Z"}, nil
		}
		return tooMany()
	}

	if strings.IndexByte(unsupportedLetters, ch) >= 0 {
		return nil, c.fail(tok.Pos, "unsupported pattern letter: %c", ch)
	}
	return nil, c.fail(tok.Pos, "unknown pattern letter: %c", ch)
}

var twoDigitFields = map[byte]Field{
	'd': FieldDayOfMonth,
	'H': FieldHourOfDay,
	'k': FieldClockHourOfDay,
	'K': FieldHourOfAmPm,
	'h': FieldClockHourOfAmPm,
	'm': FieldMinute,
	's': FieldSecond,
}

// offsetStyles indexed by letter count - 1: +HHmm, +HHMM, +HH:MM, +HHMMss, +HH:MM:ss
var offsetStyles = [5]*offsetNode{
	{minutes: optional},
	{minutes: mandatory},
	{colon: true, minutes: mandatory},
	{minutes: mandatory, seconds: optional},
	{colon: true, minutes: mandatory, seconds: optional},
}

var zeroDigits = [5]string{"+00", "+0000", "+00:00", "+0000", "+00:00"}

// Pattern returns the source pattern.
func (l *Layout) Pattern() string {
	return l.pattern
}

func (l *Layout) String() string {
	return l.pattern
}

// Uses reports whether any letter of the pattern reads or writes the field.
func (l *Layout) Uses(f Field) bool {
	return f < fieldCount && l.uses[f]
}

// Format writes f using the layout.
func (l *Layout) Format(f Fields) (string, error) {
	var b strings.Builder
	if err := formatNodes(l.nodes, &b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}
