package gen

import (
	"iter"
	"math/big"

	"github.com/vitalvas/propkit/inrange"
)

// Generator produces values of an interval. It holds no random state, so
// one Generator may be shared by goroutines that own their sources.
type Generator[T any] struct {
	iv   inrange.Interval[T]
	low  *big.Int
	span *big.Int
}

func New[T any](iv inrange.Interval[T]) *Generator[T] {
	return &Generator[T]{
		iv:   iv,
		low:  iv.LowUnit(),
		span: iv.Span(),
	}
}

func (g *Generator[T]) Interval() inrange.Interval[T] { return g.iv }

// Next returns a value drawn uniformly from the interval, both ends
// included. A single-value interval returns that value without drawing.
func (g *Generator[T]) Next(src Source) T {
	if g.span.IsInt64() && g.span.Int64() == 1 {
		return g.iv.Low()
	}
	u := Uniform(src, g.span)
	return g.iv.Domain().FromUnit(u.Add(u, g.low))
}

// Values returns an endless sequence drawn from src.
func (g *Generator[T]) Values(src Source) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			if !yield(g.Next(src)) {
				return
			}
		}
	}
}

// Stream returns an endless sequence seeded with seed. Every iteration
// starts over and yields the same values.
func (g *Generator[T]) Stream(seed uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range g.Values(NewSource(seed)) {
			if !yield(v) {
				return
			}
		}
	}
}
