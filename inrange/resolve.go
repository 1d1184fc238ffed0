// Package inrange turns declared min, max and format constraints into a
// validated closed interval of a domain.
package inrange

import (
	"github.com/vitalvas/propkit/domain"
)

// Constraint is the declared range of one property parameter. An empty
// string means the option is absent.
type Constraint struct {
	Min    string `yaml:"min" json:"min,omitempty"`
	Max    string `yaml:"max" json:"max,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

// IsZero reports whether no option is declared.
func (c Constraint) IsZero() bool {
	return c.Min == "" && c.Max == "" && c.Format == ""
}

// Resolve validates c against the domain of a. The format compiles first,
// then min and max parse in that order, then the order of the bounds is
// checked. The first failure is returned.
func Resolve[T any](a domain.Adapter[T], c Constraint) (Interval[T], error) {
	name := a.Name()

	var codec domain.Codec[T]
	if c.Format != "" {
		var err error
		codec, err = a.Compile(c.Format)
		if err != nil {
			return Interval[T]{}, &MalformedFormatError{Domain: name, Format: c.Format, Err: err}
		}
	} else if c.Min != "" || c.Max != "" {
		return Interval[T]{}, &MalformedFormatError{Domain: name, Err: ErrFormatRequired}
	}

	low, high := a.Bounds()

	if c.Min != "" {
		v, err := codec.Parse(c.Min)
		if err != nil {
			return Interval[T]{}, &MalformedBoundError{Domain: name, Side: "min", Text: c.Min, Format: c.Format, Err: err}
		}
		low = v
	}

	if c.Max != "" {
		v, err := codec.Parse(c.Max)
		if err != nil {
			return Interval[T]{}, &MalformedBoundError{Domain: name, Side: "max", Text: c.Max, Format: c.Format, Err: err}
		}
		high = v
	}

	if c.Min != "" && c.Max != "" && a.Compare(low, high) > 0 {
		return Interval[T]{}, &InvertedRangeError{Domain: name, Min: c.Min, Max: c.Max}
	}

	return newInterval(a, low, high, c.Min != "", c.Max != ""), nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve[T any](a domain.Adapter[T], c Constraint) Interval[T] {
	iv, err := Resolve(a, c)
	if err != nil {
		panic(err)
	}
	return iv
}
