package chrono

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/vitalvas/propkit/chrono/civil"
	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/xpattern"
)

// LocalDate is a date without time or offset, stored as days since 1970-01-01.
type LocalDate struct {
	days int64
}

var (
	MinDate = LocalDate{days: minEpochDay}
	MaxDate = LocalDate{days: maxEpochDay}
)

// DateOf returns the date for year, month and day.
func DateOf(year int64, month time.Month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("%w: year %d", ErrOutOfRange, year)
	}
	if !civil.Valid(year, int(month), day) {
		return LocalDate{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return LocalDate{days: civil.DaysFromCivil(year, int(month), day)}, nil
}

// MustDate is like DateOf but panics on error.
func MustDate(year int64, month time.Month, day int) LocalDate {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfEpochDay returns the date the given number of days after 1970-01-01.
func DateOfEpochDay(days int64) (LocalDate, error) {
	if days < minEpochDay || days > maxEpochDay {
		return LocalDate{}, fmt.Errorf("%w: epoch day %d", ErrOutOfRange, days)
	}
	return LocalDate{days: days}, nil
}

func (d LocalDate) EpochDay() int64 { return d.days }

func (d LocalDate) Year() int64 {
	y, _, _ := civil.CivilFromDays(d.days)
	return y
}

func (d LocalDate) Month() time.Month {
	_, m, _ := civil.CivilFromDays(d.days)
	return time.Month(m)
}

func (d LocalDate) Day() int {
	_, _, day := civil.CivilFromDays(d.days)
	return day
}

func (d LocalDate) Weekday() time.Weekday {
	return civil.WeekdayOf(d.days)
}

func (d LocalDate) Compare(other LocalDate) int {
	return compareInt64(d.days, other.days)
}

// AtTime combines the date with a time of day.
func (d LocalDate) AtTime(hour, minute, second, nsec int) (LocalDateTime, error) {
	y, m, day := civil.CivilFromDays(d.days)
	return DateTimeOf(y, time.Month(m), day, hour, minute, second, nsec)
}

// String returns the ISO-8601 form, e.g. 2012-12-31.
func (d LocalDate) String() string {
	var b strings.Builder
	d.write(&b)
	return b.String()
}

func (d LocalDate) write(b *strings.Builder) {
	y, m, day := civil.CivilFromDays(d.days)
	writeYear(b, y)
	b.WriteByte('-')
	writeTwo(b, m)
	b.WriteByte('-')
	writeTwo(b, day)
}

func (d LocalDate) fields() xpattern.Fields {
	y, m, day := civil.CivilFromDays(d.days)
	return xpattern.Fields{HasDate: true, Year: y, Month: m, Day: day}
}

func dateFromFields(f xpattern.Fields) (LocalDate, error) {
	if !f.HasDate {
		return LocalDate{}, ErrNoDate
	}
	return DateOf(f.Year, time.Month(f.Month), f.Day)
}

// DateDomain is the domain adapter for LocalDate. The comparable unit is the epoch day.
type DateDomain struct{}

var _ domain.Adapter[LocalDate] = DateDomain{}

func (DateDomain) Name() string { return "localdate" }

func (DateDomain) Compile(pattern string) (domain.Codec[LocalDate], error) {
	layout, err := xpattern.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return codec[LocalDate]{
		layout: layout,
		decode: dateFromFields,
		encode: LocalDate.fields,
	}, nil
}

func (DateDomain) Compare(a, b LocalDate) int { return a.Compare(b) }

func (DateDomain) Unit(v LocalDate) *big.Int { return big.NewInt(v.days) }

func (DateDomain) FromUnit(u *big.Int) LocalDate { return LocalDate{days: u.Int64()} }

func (DateDomain) Bounds() (LocalDate, LocalDate) { return MinDate, MaxDate }

func (DateDomain) Origin() LocalDate { return LocalDate{} }

// Simplify proposes the first day of the month and of the year.
func (DateDomain) Simplify(v LocalDate) []LocalDate {
	y, m, _ := civil.CivilFromDays(v.days)
	return []LocalDate{
		{days: civil.DaysFromCivil(y, m, 1)},
		{days: civil.DaysFromCivil(y, 1, 1)},
	}
}
