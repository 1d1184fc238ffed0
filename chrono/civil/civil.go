// Package civil converts between proleptic Gregorian calendar dates and day
// counts relative to 1970-01-01. All arithmetic is done on int64 so the full
// chrono year range fits without overflow.
package civil

import "time"

const (
	daysPerEra    = 146097
	epochShift    = 719468 // days from 0000-03-01 to 1970-01-01
	SecondsPerDay = 86400
)

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
// It returns 0 for an invalid month.
func DaysInMonth(year int64, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Valid reports whether year-month-day names an existing calendar date.
func Valid(year int64, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= DaysInMonth(year, month)
}

// DaysFromCivil returns the number of days since 1970-01-01 for the given date.
// The date is not validated.
func DaysFromCivil(year int64, month, day int) int64 {
	if month <= 2 {
		year--
	}
	era := FloorDiv(year, 400)
	yoe := year - era*400
	mp := int64((month + 9) % 12)
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerEra + doe - epochShift
}

// CivilFromDays is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year int64, month, day int) {
	z := days + epochShift
	era := FloorDiv(z, daysPerEra)
	doe := z - era*daysPerEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	year = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		year++
	}
	return year, month, day
}

// WeekdayOf returns the day of week for the given epoch day.
func WeekdayOf(days int64) time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(FloorMod(days+4, 7))
}

// ISOWeekday maps a time.Weekday to the ISO numbering, Monday=1 .. Sunday=7.
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod is the remainder matching FloorDiv; the result has the sign of b.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
