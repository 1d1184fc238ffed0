// Package shrink proposes simpler replacements for a failing value.
//
// Candidates move toward a target: the origin of the domain when the
// interval holds it, the nearest end of the interval otherwise. Every
// candidate lies inside the interval and is strictly closer to the target
// than the value it was derived from, so repeated shrinking terminates.
package shrink

import (
	"iter"
	"math/big"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/inrange"
)

// Target returns the point candidates move toward.
func Target[T any](iv inrange.Interval[T]) T {
	return iv.Clamp(iv.Domain().Origin())
}

// Distance returns how many units v lies from the target of iv.
func Distance[T any](iv inrange.Interval[T], v T) *big.Int {
	a := iv.Domain()
	d := new(big.Int).Sub(a.Unit(v), a.Unit(Target(iv)))
	return d.Abs(d)
}

// Shrink returns the candidates for v ordered by ascending distance to the
// target. The sequence is finite and empty once v is the target.
func Shrink[T any](v T, iv inrange.Interval[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range Candidates(v, iv) {
			if !yield(c) {
				return
			}
		}
	}
}

type candidate[T any] struct {
	value T
	unit  *big.Int
	dist  *big.Int
}

// Candidates is Shrink collected into a slice.
func Candidates[T any](v T, iv inrange.Interval[T]) []T {
	a := iv.Domain()
	target := a.Unit(Target(iv))
	from := a.Unit(v)

	delta := new(big.Int).Sub(from, target)
	dist := new(big.Int).Abs(delta)
	if dist.Sign() == 0 {
		return nil
	}

	var found []candidate[T]

	// target, halfway, three quarters of the way back, ...
	for step := new(big.Int).Set(delta); step.Sign() != 0; step.Quo(step, big.NewInt(2)) {
		u := new(big.Int).Sub(from, step)
		found = append(found, candidate[T]{value: a.FromUnit(u), unit: u, dist: absDiff(u, target)})
	}

	if s, ok := a.(domain.Simplifier[T]); ok {
		for _, c := range s.Simplify(v) {
			if !iv.Contains(c) {
				continue
			}
			u := a.Unit(c)
			if d := absDiff(u, target); d.Cmp(dist) < 0 {
				found = append(found, candidate[T]{value: c, unit: u, dist: d})
			}
		}
	}

	slices.SortStableFunc(found, func(x, y candidate[T]) int {
		return x.dist.Cmp(y.dist)
	})

	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]T, 0, len(found))
	for _, c := range found {
		if seen.Add(c.unit.String()) {
			out = append(out, c.value)
		}
	}
	return out
}

func absDiff(a, b *big.Int) *big.Int {
	d := new(big.Int).Sub(a, b)
	return d.Abs(d)
}
