package inrange

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/propkit/domain"
)

// Interval is a closed range of domain values. It is never modified after
// construction, and its low end never exceeds its high end.
type Interval[T any] struct {
	adapter   domain.Adapter[T]
	low, high T
	lowUnit   *big.Int
	highUnit  *big.Int
	hasMin    bool
	hasMax    bool
}

func newInterval[T any](a domain.Adapter[T], low, high T, hasMin, hasMax bool) Interval[T] {
	return Interval[T]{
		adapter:  a,
		low:      low,
		high:     high,
		lowUnit:  a.Unit(low),
		highUnit: a.Unit(high),
		hasMin:   hasMin,
		hasMax:   hasMax,
	}
}

// Full returns the natural range of the domain.
func Full[T any](a domain.Adapter[T]) Interval[T] {
	lo, hi := a.Bounds()
	return newInterval(a, lo, hi, false, false)
}

// Between returns [lo, hi] for values built in code.
func Between[T any](a domain.Adapter[T], lo, hi T) (Interval[T], error) {
	natLo, natHi := a.Bounds()
	if a.Compare(lo, natLo) < 0 || a.Compare(hi, natHi) > 0 {
		return Interval[T]{}, fmt.Errorf("%w: [%v, %v]", ErrOutOfBounds, lo, hi)
	}
	if a.Compare(lo, hi) > 0 {
		return Interval[T]{}, &InvertedRangeError{Domain: a.Name(), Min: fmt.Sprint(lo), Max: fmt.Sprint(hi)}
	}
	return newInterval(a, lo, hi, true, true), nil
}

func (iv Interval[T]) Domain() domain.Adapter[T] { return iv.adapter }

func (iv Interval[T]) Low() T  { return iv.low }
func (iv Interval[T]) High() T { return iv.high }

// LowUnit returns a copy of the comparable unit of Low.
func (iv Interval[T]) LowUnit() *big.Int { return new(big.Int).Set(iv.lowUnit) }

// HighUnit returns a copy of the comparable unit of High.
func (iv Interval[T]) HighUnit() *big.Int { return new(big.Int).Set(iv.highUnit) }

// Span returns the number of units in the interval, both ends included.
func (iv Interval[T]) Span() *big.Int {
	n := new(big.Int).Sub(iv.highUnit, iv.lowUnit)
	return n.Add(n, big.NewInt(1))
}

// Bounded reports which sides were declared rather than taken from the
// natural range.
func (iv Interval[T]) Bounded() (lower, upper bool) { return iv.hasMin, iv.hasMax }

func (iv Interval[T]) Contains(v T) bool {
	return iv.adapter.Compare(v, iv.low) >= 0 && iv.adapter.Compare(v, iv.high) <= 0
}

// Clamp returns the point of the interval closest to v.
func (iv Interval[T]) Clamp(v T) T {
	switch {
	case iv.adapter.Compare(v, iv.low) < 0:
		return iv.low
	case iv.adapter.Compare(v, iv.high) > 0:
		return iv.high
	}
	return v
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("%s[%v, %v]", iv.adapter.Name(), iv.low, iv.high)
}
