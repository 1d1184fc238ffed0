package propkit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/propkit/chrono"
	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/inrange"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default())
	assert.Equal(t, []string{"localdate", "localdatetime", "offsetdatetime"}, r.Tags())

	for _, tag := range r.Tags() {
		t.Run(tag, func(t *testing.T) {
			a, err := r.Lookup(tag)
			require.NoError(t, err)
			assert.Equal(t, tag, a.Name())
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Run("typed register and lookup", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, Register[chrono.LocalDate](r, "date", chrono.DateDomain{}))

		a, err := Lookup[chrono.LocalDate](r, "date")
		require.NoError(t, err)
		assert.Equal(t, chrono.DateDomain{}, a)

		_, err = Lookup[chrono.LocalDateTime](r, "date")
		assert.Error(t, err)
	})

	t.Run("duplicate", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, Register[chrono.LocalDate](r, "date", chrono.DateDomain{}))
		err := Register[chrono.LocalDate](r, "date", chrono.DateDomain{})
		assert.ErrorIs(t, err, ErrDuplicateDomain)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewRegistry().Lookup("instant")
		assert.ErrorIs(t, err, ErrUnknownDomain)

		_, err = Lookup[chrono.LocalDate](NewRegistry(), "instant")
		assert.ErrorIs(t, err, ErrUnknownDomain)
	})

	t.Run("empty tag", func(t *testing.T) {
		err := NewRegistry().Register("", domain.Erase[chrono.LocalDate](chrono.DateDomain{}))
		assert.Error(t, err)
	})

	t.Run("concurrent", func(t *testing.T) {
		r := NewRegistry()
		var wg sync.WaitGroup
		for _, tag := range []string{"a", "b", "c", "d"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, Register[chrono.LocalDate](r, tag, chrono.DateDomain{}))
				_, err := r.Lookup(tag)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, []string{"a", "b", "c", "d"}, r.Tags())
	})
}

func TestLookupResolves(t *testing.T) {
	a, err := Default().Lookup("offsetdatetime")
	require.NoError(t, err)

	iv, err := inrange.Resolve(a, inrange.Constraint{
		Max:    "12/31/2012T23:59:59.999999999+01:00",
		Format: "MM/dd/yyyy'T'HH:mm:ss.nxxx",
	})
	require.NoError(t, err)

	want := chrono.MustOffset(chrono.MustDateTime(2012, time.December, 31, 23, 59, 59, 999_999_999), 3600)
	assert.Equal(t, any(want), iv.High())
}
