package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDaysFromCivil(t *testing.T) {
	tests := []struct {
		name  string
		year  int64
		month int
		day   int
		days  int64
	}{
		{"epoch", 1970, 1, 1, 0},
		{"day after epoch", 1970, 1, 2, 1},
		{"day before epoch", 1969, 12, 31, -1},
		{"leap day", 2000, 2, 29, 11016},
		{"end of 2012", 2012, 12, 31, 15705},
		{"year zero", 0, 1, 1, -719528},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, DaysFromCivil(tt.year, tt.month, tt.day))

			y, m, d := CivilFromDays(tt.days)
			assert.Equal(t, tt.year, y)
			assert.Equal(t, tt.month, m)
			assert.Equal(t, tt.day, d)
		})
	}
}

func TestAgainstTimePackage(t *testing.T) {
	for _, year := range []int{-4713, -1, 1, 1582, 1900, 1970, 2000, 2012, 2100, 9999} {
		for month := 1; month <= 12; month++ {
			tm := time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC)
			days := DaysFromCivil(int64(year), month, 15)
			assert.Equal(t, tm.Unix()/SecondsPerDay, days, "%d-%02d", year, month)
			assert.Equal(t, tm.Weekday(), WeekdayOf(days), "%d-%02d", year, month)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		days := rapid.Int64Range(-365_243_219_162, 365_241_780_471).Draw(t, "days")
		y, m, d := CivilFromDays(days)
		if !Valid(y, m, d) {
			t.Fatalf("invalid date %d-%d-%d for day %d", y, m, d, days)
		}
		if got := DaysFromCivil(y, m, d); got != days {
			t.Fatalf("round trip of %d gave %d", days, got)
		}
	})
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2012, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2))
	assert.Equal(t, 29, DaysInMonth(2000, 2))
	assert.Equal(t, 29, DaysInMonth(-4, 2))
	assert.Equal(t, 30, DaysInMonth(2012, 11))
	assert.Equal(t, 0, DaysInMonth(2012, 13))
	assert.False(t, Valid(2011, 2, 29))
	assert.True(t, Valid(2012, 2, 29))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(-1), FloorDiv(-1, 400))
	assert.Equal(t, int64(0), FloorDiv(399, 400))
	assert.Equal(t, int64(-2), FloorDiv(-401, 400))
	assert.Equal(t, int64(6), FloorMod(-1, 7))
	assert.Equal(t, int64(0), FloorMod(-7, 7))
}

func TestISOWeekday(t *testing.T) {
	assert.Equal(t, 7, ISOWeekday(time.Sunday))
	assert.Equal(t, 1, ISOWeekday(time.Monday))
}
