package xpattern

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPattern is matched by every *PatternError.
	ErrInvalidPattern = errors.New("xpattern: invalid pattern")

	// ErrInvalidText is matched by every *ParseError.
	ErrInvalidText = errors.New("xpattern: text does not match pattern")

	// ErrFieldUnavailable is returned when formatting needs a field the value does not carry.
	ErrFieldUnavailable = errors.New("xpattern: field not available")

	// ErrUnprintable is returned when a value cannot be written with the pattern, e.g. it needs more digits than allowed.
	ErrUnprintable = errors.New("xpattern: value cannot be printed with pattern")
)

// PatternError describes why a pattern could not be compiled.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("xpattern: invalid pattern %q at position %d: %s", e.Pattern, e.Pos, e.Msg)
}

func (e *PatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// ParseError describes why text could not be parsed with a layout.
// Pos is negative when every character matched but the fields are inconsistent.
type ParseError struct {
	Text string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("xpattern: text %q could not be resolved: %s", e.Text, e.Msg)
	}
	return fmt.Sprintf("xpattern: text %q could not be parsed at index %d: %s", e.Text, e.Pos, e.Msg)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidText
}
