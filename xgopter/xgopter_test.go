package xgopter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/propkit/chrono"
	"github.com/vitalvas/propkit/inrange"
)

const rangePattern = "MM/dd/yyyy'T'HH:mm:ss.nxxx"

func TestGen(t *testing.T) {
	a := chrono.OffsetDomain{}
	iv := inrange.MustResolve(a, inrange.Constraint{Max: "12/31/2012T23:59:59.999999999+01:00", Format: rangePattern})
	g := Gen(iv)

	for range 100 {
		value, ok := g.Sample()
		require.True(t, ok)
		require.IsType(t, chrono.OffsetDateTime{}, value)
		assert.True(t, iv.Contains(value.(chrono.OffsetDateTime)))

		result := g(gopter.DefaultGenParameters())
		v, ok := result.Retrieve()
		require.True(t, ok)
		shrunk, ok := result.Shrinker(v).Filter(result.Sieve)()
		if ok {
			assert.True(t, iv.Contains(shrunk.(chrono.OffsetDateTime)))
			assert.NotEqual(t, v, shrunk)
		}
	}
}

func TestShrinker(t *testing.T) {
	iv := inrange.Full[chrono.LocalDate](chrono.DateDomain{})
	s := Shrinker(iv)

	var got []string
	next := s(chrono.MustDate(1970, time.January, 11))
	for v, ok := next(); ok; v, ok = next() {
		got = append(got, v.(chrono.LocalDate).String())
	}
	assert.Equal(t, []string{"1970-01-01", "1970-01-06", "1970-01-09", "1970-01-10"}, got)

	_, ok := s("not a date")()
	assert.False(t, ok)
}

func TestProperties(t *testing.T) {
	iv := inrange.MustResolve(chrono.DateDomain{}, inrange.Constraint{Min: "1990-01-01", Max: "2030-12-31", Format: "yyyy-MM-dd"})
	y2k := chrono.MustDate(2000, time.January, 1)

	t.Run("passes", func(t *testing.T) {
		properties := gopter.NewProperties(gopter.DefaultTestParametersWithSeed(1234))
		properties.Property("in range", prop.ForAll(iv.Contains, Gen(iv)))
		properties.TestingRun(t)
	})

	t.Run("shrinks counterexample", func(t *testing.T) {
		params := gopter.DefaultTestParametersWithSeed(1234)
		params.MaxShrinkCount = 10_000

		properties := gopter.NewProperties(params)
		properties.Property("before 2000", prop.ForAll(func(v chrono.LocalDate) bool {
			return v.Compare(y2k) < 0
		}, Gen(iv)))

		var out bytes.Buffer
		assert.False(t, properties.Run(gopter.NewFormatedReporter(false, 80, &out)))
		assert.True(t, strings.Contains(out.String(), "ARG_0: 2000-01-01"), out.String())
	})
}
