// Package xgopter exposes resolved intervals as gopter generators, so the
// same ranges and shrinking drive properties written with gopter.
package xgopter

import (
	"reflect"

	"github.com/leanovate/gopter"

	"github.com/vitalvas/propkit/gen"
	"github.com/vitalvas/propkit/inrange"
	"github.com/vitalvas/propkit/shrink"
)

// Gen draws values of iv from the generator parameters' random source.
func Gen[T any](iv inrange.Interval[T]) gopter.Gen {
	g := gen.New(iv)
	shrinker := Shrinker(iv)
	resultType := reflect.TypeFor[T]()

	return func(p *gopter.GenParameters) *gopter.GenResult {
		result := gopter.NewGenResult(g.Next(p.Rng), shrinker)
		result.ResultType = resultType
		result.Sieve = func(v any) bool {
			typed, ok := v.(T)
			return ok && iv.Contains(typed)
		}
		return result
	}
}

// Shrinker yields the shrink candidates of a value of iv, closest to the
// target first.
func Shrinker[T any](iv inrange.Interval[T]) gopter.Shrinker {
	return func(value any) gopter.Shrink {
		v, ok := value.(T)
		if !ok {
			return gopter.NoShrink
		}

		candidates := shrink.Candidates(v, iv)
		return func() (any, bool) {
			if len(candidates) == 0 {
				return nil, false
			}
			next := candidates[0]
			candidates = candidates[1:]
			return next, true
		}
	}
}
