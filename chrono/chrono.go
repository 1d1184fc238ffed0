// Package chrono provides calendar value types and their domain adapters:
// LocalDate, LocalDateTime and OffsetDateTime. Values are plain comparable
// structs; == agrees with Compare(...) == 0.
package chrono

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/vitalvas/propkit/chrono/civil"
	"github.com/vitalvas/propkit/xpattern"
)

const (
	MinYear = -999_999_999
	MaxYear = 999_999_999

	// MaxOffset is the largest distance from UTC in seconds.
	MaxOffset = 18 * 3600

	nanosPerSecond = 1_000_000_000
	offsetSlots    = 2*MaxOffset + 1
)

var (
	ErrInvalidDate = errors.New("chrono: invalid date")
	ErrInvalidTime = errors.New("chrono: invalid time")
	ErrOutOfRange  = errors.New("chrono: value out of range")
	ErrNoDate      = errors.New("chrono: text does not contain a date")
	ErrNoTime      = errors.New("chrono: text does not contain a time")
	ErrNoOffset    = errors.New("chrono: text does not contain an offset")
)

var (
	minEpochDay = civil.DaysFromCivil(MinYear, 1, 1)
	maxEpochDay = civil.DaysFromCivil(MaxYear, 12, 31)

	bigBillion = big.NewInt(nanosPerSecond)
	bigSlots   = big.NewInt(offsetSlots)
)

// codec adapts an xpattern layout to one value type.
type codec[T any] struct {
	layout *xpattern.Layout
	decode func(xpattern.Fields) (T, error)
	encode func(T) xpattern.Fields
}

func (c codec[T]) Parse(text string) (T, error) {
	f, err := c.layout.Parse(text)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := c.decode(f)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("chrono: parse %q: %w", text, err)
	}
	return v, nil
}

func (c codec[T]) Format(v T) (string, error) {
	return c.layout.Format(c.encode(v))
}

func nanosOf(sec int64, nsec int32) *big.Int {
	n := big.NewInt(sec)
	n.Mul(n, bigBillion)
	return n.Add(n, big.NewInt(int64(nsec)))
}

func splitNanos(n *big.Int) (int64, int32) {
	sec, nsec := new(big.Int).DivMod(n, bigBillion, new(big.Int))
	return sec.Int64(), int32(nsec.Int64())
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func writeYear(b *strings.Builder, year int64) {
	switch {
	case year > 9999:
		b.WriteByte('+')
	case year < 0:
		b.WriteByte('-')
		year = -year
	}
	s := strconv.FormatInt(year, 10)
	for i := len(s); i < 4; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func writeTwo(b *strings.Builder, v int) {
	b.WriteByte(byte('0' + v/10))
	b.WriteByte(byte('0' + v%10))
}

// writeFraction writes nanos in groups of three digits, omitting it when zero.
func writeFraction(b *strings.Builder, nsec int) {
	if nsec == 0 {
		return
	}
	digits := fmt.Sprintf("%09d", nsec)
	switch {
	case nsec%1_000_000 == 0:
		digits = digits[:3]
	case nsec%1_000 == 0:
		digits = digits[:6]
	}
	b.WriteByte('.')
	b.WriteString(digits)
}
