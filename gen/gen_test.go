package gen

import (
	"iter"
	"math/big"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vitalvas/propkit/chrono"
	"github.com/vitalvas/propkit/inrange"
)

const rangePattern = "MM/dd/yyyy'T'HH:mm:ss.nxxx"

func TestUniform(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		src := NewSource(1)
		for range 10 {
			assert.Equal(t, 0, Uniform(src, big.NewInt(1)).Sign())
		}
	})

	t.Run("non-positive bound", func(t *testing.T) {
		assert.Panics(t, func() { Uniform(NewSource(1), big.NewInt(0)) })
		assert.Panics(t, func() { Uniform(NewSource(1), big.NewInt(-5)) })
	})

	t.Run("within bound", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			seed := rapid.Uint64().Draw(t, "seed")
			shift := rapid.UintRange(0, 200).Draw(t, "shift")
			extra := rapid.Int64Range(1, 1<<40).Draw(t, "extra")

			n := new(big.Int).Lsh(big.NewInt(extra), shift)
			v := Uniform(NewSource(seed), n)
			if v.Sign() < 0 || v.Cmp(n) >= 0 {
				t.Fatalf("Uniform(%s) = %s", n, v)
			}
		})
	})

	t.Run("wide bound reaches upper half", func(t *testing.T) {
		n := new(big.Int).Lsh(big.NewInt(3), 100)
		half := new(big.Int).Rsh(n, 1)
		src := NewSource(7)

		upper := 0
		for range 200 {
			if Uniform(src, n).Cmp(half) >= 0 {
				upper++
			}
		}
		assert.InDelta(t, 100, upper, 40)
	})

	t.Run("math/rand source", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		v := Uniform(r, big.NewInt(10))
		assert.True(t, v.Sign() >= 0 && v.Cmp(big.NewInt(10)) < 0)
	})

	t.Run("evenly spread", func(t *testing.T) {
		src := NewSource(99)
		samples := make([]float64, 0, 20000)
		counts := make([]int, 10)
		for range 20000 {
			v := Uniform(src, big.NewInt(10)).Int64()
			counts[v]++
			samples = append(samples, float64(v))
		}

		mean, err := stats.Mean(samples)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, mean, 0.1)

		for digit, c := range counts {
			assert.InDelta(t, 2000, c, 200, "digit %d", digit)
		}
	})
}

func TestSeeds(t *testing.T) {
	a, b := NewSource(5), NewSource(5)
	for range 100 {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, NewSource(5).Uint64(), NewSource(6).Uint64())
	assert.NotZero(t, RandomSeed())
}

func TestGenerator(t *testing.T) {
	a := chrono.OffsetDomain{}

	t.Run("missing min stays below max", func(t *testing.T) {
		iv := inrange.MustResolve(a, inrange.Constraint{Max: "12/31/2012T23:59:59.999999999+01:00", Format: rangePattern})
		g := New(iv)
		src := NewSource(3)
		for range 1000 {
			v := g.Next(src)
			require.True(t, a.Compare(v, iv.High()) <= 0, "%s after %s", v, iv.High())
			require.True(t, iv.Contains(v))
		}
	})

	t.Run("missing max stays above min", func(t *testing.T) {
		iv := inrange.MustResolve(a, inrange.Constraint{Min: "12/31/2012T23:59:59.999999999+01:00", Format: rangePattern})
		g := New(iv)
		src := NewSource(4)
		for range 1000 {
			v := g.Next(src)
			require.True(t, a.Compare(v, iv.Low()) >= 0, "%s before %s", v, iv.Low())
		}
	})

	t.Run("full range", func(t *testing.T) {
		g := New(inrange.Full[chrono.OffsetDateTime](a))
		src := NewSource(5)
		for range 1000 {
			v := g.Next(src)
			local := v.Local()
			require.True(t, local.Compare(chrono.MinDateTime) >= 0 && local.Compare(chrono.MaxDateTime) <= 0, "%s", v)
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		iv := inrange.MustResolve(a, inrange.Constraint{
			Min:    "12/31/2012T23:59:59.999999999+01:00",
			Max:    "12/31/2012T23:59:59.999999999+01:00",
			Format: rangePattern,
		})
		g := New(iv)
		for v := range limit(g.Stream(1), 20) {
			assert.Equal(t, iv.Low(), v)
		}
	})

	t.Run("both ends are reachable", func(t *testing.T) {
		lo := chrono.MustDate(2012, time.January, 1)
		hi := chrono.MustDate(2012, time.January, 3)
		iv, err := inrange.Between[chrono.LocalDate](chrono.DateDomain{}, lo, hi)
		require.NoError(t, err)

		seen := map[chrono.LocalDate]int{}
		for v := range limit(New(iv).Stream(11), 300) {
			seen[v]++
		}
		assert.Len(t, seen, 3)
		assert.Positive(t, seen[lo])
		assert.Positive(t, seen[hi])
	})

	t.Run("within any resolved interval", func(t *testing.T) {
		d := chrono.DateTimeDomain{}
		rapid.Check(t, func(t *rapid.T) {
			lo := rapid.Int64Range(-1<<50, 1<<50).Draw(t, "lo")
			width := rapid.Int64Range(0, 1<<40).Draw(t, "width")
			low := d.FromUnit(big.NewInt(lo))
			high := d.FromUnit(big.NewInt(lo + width))

			iv, err := inrange.Between[chrono.LocalDateTime](d, low, high)
			if err != nil {
				t.Fatalf("Between: %v", err)
			}
			v := New(iv).Next(NewSource(rapid.Uint64().Draw(t, "seed")))
			if !iv.Contains(v) {
				t.Fatalf("%s outside %s", v, iv)
			}
		})
	})
}

func TestStream(t *testing.T) {
	g := New(inrange.Full[chrono.LocalDate](chrono.DateDomain{}))

	first := slices.Collect(limit(g.Stream(2024), 50))
	second := slices.Collect(limit(g.Stream(2024), 50))
	other := slices.Collect(limit(g.Stream(2025), 50))

	assert.Len(t, first, 50)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)

	stream := g.Stream(2024)
	again := slices.Collect(limit(stream, 50))
	assert.Equal(t, first, again)
}

func limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

func BenchmarkNext(b *testing.B) {
	iv := inrange.MustResolve(chrono.OffsetDomain{}, inrange.Constraint{
		Min:    "12/01/2012T00:00:00.0+01:00",
		Max:    "12/31/2012T23:59:59.999999999+01:00",
		Format: rangePattern,
	})
	g := New(iv)
	src := NewSource(1)

	for b.Loop() {
		g.Next(src)
	}
}
