package domain

import (
	"fmt"
	"math/big"
)

// Erase wraps a typed adapter so it can be stored next to adapters of other
// types. Values handed to the erased adapter must be of type T.
func Erase[T any](a Adapter[T]) Adapter[any] {
	if e, ok := any(a).(Adapter[any]); ok {
		return e
	}
	base := &erased[T]{typed: a}
	if s, ok := a.(Simplifier[T]); ok {
		return &erasedSimplifier[T]{erased: base, simplifier: s}
	}
	return base
}

// Unwrap returns the typed adapter behind an erased one.
func Unwrap[T any](a Adapter[any]) (Adapter[T], bool) {
	switch e := a.(type) {
	case *erased[T]:
		return e.typed, true
	case *erasedSimplifier[T]:
		return e.typed, true
	}
	typed, ok := a.(Adapter[T])
	return typed, ok
}

type erased[T any] struct {
	typed Adapter[T]
}

func (e *erased[T]) cast(v any) T {
	typed, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("domain: %s adapter got value of type %T", e.typed.Name(), v))
	}
	return typed
}

func (e *erased[T]) Name() string { return e.typed.Name() }

func (e *erased[T]) Compile(pattern string) (Codec[any], error) {
	codec, err := e.typed.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &erasedCodec[T]{owner: e, typed: codec}, nil
}

func (e *erased[T]) Compare(a, b any) int {
	return e.typed.Compare(e.cast(a), e.cast(b))
}

func (e *erased[T]) Unit(v any) *big.Int {
	return e.typed.Unit(e.cast(v))
}

func (e *erased[T]) FromUnit(u *big.Int) any {
	return e.typed.FromUnit(u)
}

func (e *erased[T]) Bounds() (any, any) {
	lo, hi := e.typed.Bounds()
	return lo, hi
}

func (e *erased[T]) Origin() any {
	return e.typed.Origin()
}

type erasedSimplifier[T any] struct {
	*erased[T]
	simplifier Simplifier[T]
}

func (e *erasedSimplifier[T]) Simplify(v any) []any {
	typed := e.simplifier.Simplify(e.cast(v))
	out := make([]any, len(typed))
	for i, c := range typed {
		out[i] = c
	}
	return out
}

type erasedCodec[T any] struct {
	owner *erased[T]
	typed Codec[T]
}

func (c *erasedCodec[T]) Parse(text string) (any, error) {
	v, err := c.typed.Parse(text)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *erasedCodec[T]) Format(v any) (string, error) {
	return c.typed.Format(c.owner.cast(v))
}
