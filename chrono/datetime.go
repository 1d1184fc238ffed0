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

// LocalDateTime is a date-time without offset. sec counts seconds from
// 1970-01-01T00:00 as if the value were at UTC.
type LocalDateTime struct {
	sec  int64
	nsec int32
}

var (
	MinDateTime = LocalDateTime{sec: minEpochDay * civil.SecondsPerDay}
	MaxDateTime = LocalDateTime{sec: maxEpochDay*civil.SecondsPerDay + civil.SecondsPerDay - 1, nsec: nanosPerSecond - 1}
)

// DateTimeOf returns the date-time for the given calendar fields.
func DateTimeOf(year int64, month time.Month, day, hour, minute, second, nsec int) (LocalDateTime, error) {
	d, err := DateOf(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 || nsec < 0 || nsec >= nanosPerSecond {
		return LocalDateTime{}, fmt.Errorf("%w: %02d:%02d:%02d.%09d", ErrInvalidTime, hour, minute, second, nsec)
	}
	sec := d.days*civil.SecondsPerDay + int64(hour*3600+minute*60+second)
	return LocalDateTime{sec: sec, nsec: int32(nsec)}, nil
}

// MustDateTime is like DateTimeOf but panics on error.
func MustDateTime(year int64, month time.Month, day, hour, minute, second, nsec int) LocalDateTime {
	dt, err := DateTimeOf(year, month, day, hour, minute, second, nsec)
	if err != nil {
		panic(err)
	}
	return dt
}

// Date returns the date part.
func (dt LocalDateTime) Date() LocalDate {
	return LocalDate{days: civil.FloorDiv(dt.sec, civil.SecondsPerDay)}
}

func (dt LocalDateTime) secondOfDay() int {
	return int(civil.FloorMod(dt.sec, civil.SecondsPerDay))
}

func (dt LocalDateTime) Hour() int       { return dt.secondOfDay() / 3600 }
func (dt LocalDateTime) Minute() int     { return dt.secondOfDay() % 3600 / 60 }
func (dt LocalDateTime) Second() int     { return dt.secondOfDay() % 60 }
func (dt LocalDateTime) Nanosecond() int { return int(dt.nsec) }

func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := compareInt64(dt.sec, other.sec); c != 0 {
		return c
	}
	return compareInt64(int64(dt.nsec), int64(other.nsec))
}

// At combines the date-time with an offset in seconds east of UTC.
func (dt LocalDateTime) At(offset int) (OffsetDateTime, error) {
	return OffsetOf(dt, offset)
}

// UTC reports the value as a time.Time at UTC.
func (dt LocalDateTime) UTC() time.Time {
	return time.Unix(dt.sec, int64(dt.nsec)).UTC()
}

// truncate drops everything below the given number of seconds.
func (dt LocalDateTime) truncate(seconds int64) LocalDateTime {
	return LocalDateTime{sec: dt.sec - civil.FloorMod(dt.sec, seconds)}
}

// String returns the ISO-8601 form, e.g. 2012-12-31T23:59:59.999.
func (dt LocalDateTime) String() string {
	var b strings.Builder
	dt.write(&b)
	return b.String()
}

func (dt LocalDateTime) write(b *strings.Builder) {
	dt.Date().write(b)
	b.WriteByte('T')
	writeTwo(b, dt.Hour())
	b.WriteByte(':')
	writeTwo(b, dt.Minute())
	b.WriteByte(':')
	writeTwo(b, dt.Second())
	writeFraction(b, int(dt.nsec))
}

func (dt LocalDateTime) fields() xpattern.Fields {
	f := dt.Date().fields()
	f.HasTime = true
	f.Hour, f.Minute, f.Second, f.Nano = dt.Hour(), dt.Minute(), dt.Second(), int(dt.nsec)
	return f
}

func dateTimeFromFields(f xpattern.Fields) (LocalDateTime, error) {
	if !f.HasDate {
		return LocalDateTime{}, ErrNoDate
	}
	if !f.HasTime {
		return LocalDateTime{}, ErrNoTime
	}
	return DateTimeOf(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, f.Nano)
}

// DateTimeDomain is the domain adapter for LocalDateTime. The comparable
// unit is nanoseconds since 1970-01-01T00:00.
type DateTimeDomain struct{}

var _ domain.Adapter[LocalDateTime] = DateTimeDomain{}

func (DateTimeDomain) Name() string { return "localdatetime" }

func (DateTimeDomain) Compile(pattern string) (domain.Codec[LocalDateTime], error) {
	layout, err := xpattern.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return codec[LocalDateTime]{
		layout: layout,
		decode: dateTimeFromFields,
		encode: LocalDateTime.fields,
	}, nil
}

func (DateTimeDomain) Compare(a, b LocalDateTime) int { return a.Compare(b) }

func (DateTimeDomain) Unit(v LocalDateTime) *big.Int { return nanosOf(v.sec, v.nsec) }

func (DateTimeDomain) FromUnit(u *big.Int) LocalDateTime {
	sec, nsec := splitNanos(u)
	return LocalDateTime{sec: sec, nsec: nsec}
}

func (DateTimeDomain) Bounds() (LocalDateTime, LocalDateTime) { return MinDateTime, MaxDateTime }

func (DateTimeDomain) Origin() LocalDateTime { return LocalDateTime{} }

// Simplify proposes the value with coarser precision, then the start of
// its day, month and year.
func (DateTimeDomain) Simplify(v LocalDateTime) []LocalDateTime {
	return simplerDateTimes(v)
}

func simplerDateTimes(v LocalDateTime) []LocalDateTime {
	y, m, _ := civil.CivilFromDays(v.Date().days)
	return []LocalDateTime{
		v.truncate(1),
		v.truncate(60),
		v.truncate(3600),
		v.truncate(civil.SecondsPerDay),
		{sec: civil.DaysFromCivil(y, m, 1) * civil.SecondsPerDay},
		{sec: civil.DaysFromCivil(y, 1, 1) * civil.SecondsPerDay},
	}
}
