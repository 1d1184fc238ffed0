// Package domain defines the contract between the range engine and a
// generated value type: parsing bounds, ordering, and an integer embedding
// used for uniform sampling and shrinking.
package domain

import "math/big"

// Codec parses and formats values with one compiled format pattern.
type Codec[T any] interface {
	Parse(text string) (T, error)
	Format(v T) (string, error)
}

// Adapter describes an orderable, parsable value space.
//
// Unit must be strictly monotonic with Compare, and FromUnit(Unit(v)) must
// equal v. Every integer between Unit(min) and Unit(max) of Bounds must map
// back to a valid value.
type Adapter[T any] interface {
	// Name is a stable tag for the domain, used in registries and reports.
	Name() string
	// Compile turns a format pattern into a Codec, or fails if the pattern is invalid.
	Compile(pattern string) (Codec[T], error)
	Compare(a, b T) int
	Unit(v T) *big.Int
	FromUnit(u *big.Int) T
	// Bounds returns the natural extremes of the domain.
	Bounds() (lo, hi T)
	// Origin is the preferred shrink target.
	Origin() T
}

// Simplifier is implemented by adapters that can propose structurally
// simpler neighbours of a value, such as a time truncated to whole seconds.
// Candidates are filtered by the shrinker, so they may fall anywhere.
type Simplifier[T any] interface {
	Simplify(v T) []T
}
