package inrange

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFormat is matched by every *MalformedFormatError.
	ErrMalformedFormat = errors.New("inrange: malformed format")

	// ErrMalformedBound is matched by every *MalformedBoundError.
	ErrMalformedBound = errors.New("inrange: malformed bound")

	// ErrInvertedRange is matched by every *InvertedRangeError.
	ErrInvertedRange = errors.New("inrange: inverted range")

	// ErrFormatRequired is the cause of a MalformedFormatError raised for a
	// bound declared without a format.
	ErrFormatRequired = errors.New("inrange: format is required when min or max is set")

	// ErrOutOfBounds is returned by Between for values outside the natural range.
	ErrOutOfBounds = errors.New("inrange: value outside the natural range of the domain")
)

// Error kinds returned by Kind.
const (
	KindMalformedFormat = "malformed-format"
	KindMalformedBound  = "malformed-bound"
	KindInvertedRange   = "inverted-range"
)

// MalformedFormatError reports a format pattern that does not compile.
type MalformedFormatError struct {
	Domain string
	Format string
	Err    error
}

func (e *MalformedFormatError) Error() string {
	return fmt.Sprintf("inrange: malformed format %q for %s: %v", e.Format, e.Domain, e.Err)
}

func (e *MalformedFormatError) Unwrap() []error {
	return []error{ErrMalformedFormat, e.Err}
}

// MalformedBoundError reports a min or max text that does not parse.
type MalformedBoundError struct {
	Domain string
	Side   string // "min" or "max"
	Text   string
	Format string
	Err    error
}

func (e *MalformedBoundError) Error() string {
	return fmt.Sprintf("inrange: malformed %s %q for %s with format %q: %v", e.Side, e.Text, e.Domain, e.Format, e.Err)
}

func (e *MalformedBoundError) Unwrap() []error {
	return []error{ErrMalformedBound, e.Err}
}

// InvertedRangeError reports a min that is greater than max.
type InvertedRangeError struct {
	Domain string
	Min    string
	Max    string
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("inrange: inverted range for %s: min %q is after max %q", e.Domain, e.Min, e.Max)
}

func (e *InvertedRangeError) Is(target error) bool {
	return target == ErrInvertedRange
}

// Kind returns the stable kind of a resolution error, or "" for any other error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMalformedFormat):
		return KindMalformedFormat
	case errors.Is(err, ErrMalformedBound):
		return KindMalformedBound
	case errors.Is(err, ErrInvertedRange):
		return KindInvertedRange
	}
	return ""
}
