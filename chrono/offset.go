package chrono

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/vitalvas/propkit/domain"
	"github.com/vitalvas/propkit/xpattern"
)

// OffsetDateTime is a date-time with a fixed offset from UTC. sec counts
// seconds of the instant since the Unix epoch; offset is seconds east of UTC.
type OffsetDateTime struct {
	sec    int64
	nsec   int32
	offset int32
}

var (
	MinOffsetDateTime = OffsetDateTime{sec: MinDateTime.sec + MaxOffset, offset: -MaxOffset}
	MaxOffsetDateTime = OffsetDateTime{sec: MaxDateTime.sec - MaxOffset, nsec: MaxDateTime.nsec, offset: MaxOffset}
)

// OffsetOf returns dt at the given offset in seconds east of UTC.
func OffsetOf(dt LocalDateTime, offset int) (OffsetDateTime, error) {
	if offset < -MaxOffset || offset > MaxOffset {
		return OffsetDateTime{}, fmt.Errorf("%w: offset %ds", ErrOutOfRange, offset)
	}
	return OffsetDateTime{sec: dt.sec - int64(offset), nsec: dt.nsec, offset: int32(offset)}, nil
}

// MustOffset is like OffsetOf but panics on error.
func MustOffset(dt LocalDateTime, offset int) OffsetDateTime {
	o, err := OffsetOf(dt, offset)
	if err != nil {
		panic(err)
	}
	return o
}

// FromTime converts t, keeping the offset of its location at that instant.
func FromTime(t time.Time) (OffsetDateTime, error) {
	_, offset := t.Zone()
	if offset < -MaxOffset || offset > MaxOffset {
		return OffsetDateTime{}, fmt.Errorf("%w: offset %ds", ErrOutOfRange, offset)
	}
	return OffsetDateTime{sec: t.Unix(), nsec: int32(t.Nanosecond()), offset: int32(offset)}, nil
}

// Local returns the date-time as seen at the value's offset.
func (o OffsetDateTime) Local() LocalDateTime {
	return LocalDateTime{sec: o.sec + int64(o.offset), nsec: o.nsec}
}

func (o OffsetDateTime) Offset() int        { return int(o.offset) }
func (o OffsetDateTime) EpochSecond() int64 { return o.sec }
func (o OffsetDateTime) Nanosecond() int    { return int(o.nsec) }

// UTC returns the same instant at offset zero.
func (o OffsetDateTime) UTC() OffsetDateTime {
	return OffsetDateTime{sec: o.sec, nsec: o.nsec}
}

// Time reports the value as a time.Time in a fixed zone.
func (o OffsetDateTime) Time() time.Time {
	return time.Unix(o.sec, int64(o.nsec)).In(time.FixedZone("", int(o.offset)))
}

// Compare orders by instant, then by local date-time.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	if c := compareInt64(o.sec, other.sec); c != 0 {
		return c
	}
	if c := compareInt64(int64(o.nsec), int64(other.nsec)); c != 0 {
		return c
	}
	return compareInt64(int64(o.offset), int64(other.offset))
}

// IsSameInstant reports whether both values denote the same point on the time-line.
func (o OffsetDateTime) IsSameInstant(other OffsetDateTime) bool {
	return o.sec == other.sec && o.nsec == other.nsec
}

// String returns the ISO-8601 form, e.g. 2012-12-31T23:59:59+01:00.
func (o OffsetDateTime) String() string {
	var b strings.Builder
	o.Local().write(&b)
	off := int(o.offset)
	if off == 0 {
		b.WriteByte('Z')
		return b.String()
	}
	if off < 0 {
		b.WriteByte('-')
		off = -off
	} else {
		b.WriteByte('+')
	}
	writeTwo(&b, off/3600)
	b.WriteByte(':')
	writeTwo(&b, off%3600/60)
	if s := off % 60; s != 0 {
		b.WriteByte(':')
		writeTwo(&b, s)
	}
	return b.String()
}

func (o OffsetDateTime) fields() xpattern.Fields {
	f := o.Local().fields()
	f.HasOffset = true
	f.Offset = int(o.offset)
	return f
}

func offsetFromFields(f xpattern.Fields) (OffsetDateTime, error) {
	dt, err := dateTimeFromFields(f)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if !f.HasOffset {
		return OffsetDateTime{}, ErrNoOffset
	}
	o, err := OffsetOf(dt, f.Offset)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if o.Compare(MinOffsetDateTime) < 0 || o.Compare(MaxOffsetDateTime) > 0 {
		return OffsetDateTime{}, fmt.Errorf("%w: %s", ErrOutOfRange, o)
	}
	return o, nil
}

// OffsetDomain is the domain adapter for OffsetDateTime. The comparable
// unit packs the instant in nanoseconds with the offset, so that units
// order values the same way Compare does.
type OffsetDomain struct{}

var _ domain.Adapter[OffsetDateTime] = OffsetDomain{}

func (OffsetDomain) Name() string { return "offsetdatetime" }

func (OffsetDomain) Compile(pattern string) (domain.Codec[OffsetDateTime], error) {
	layout, err := xpattern.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return codec[OffsetDateTime]{
		layout: layout,
		decode: offsetFromFields,
		encode: OffsetDateTime.fields,
	}, nil
}

func (OffsetDomain) Compare(a, b OffsetDateTime) int { return a.Compare(b) }

func (OffsetDomain) Unit(v OffsetDateTime) *big.Int {
	u := nanosOf(v.sec, v.nsec)
	u.Mul(u, bigSlots)
	return u.Add(u, big.NewInt(int64(v.offset)+MaxOffset))
}

func (OffsetDomain) FromUnit(u *big.Int) OffsetDateTime {
	n, slot := new(big.Int).DivMod(u, bigSlots, new(big.Int))
	sec, nsec := splitNanos(n)
	return OffsetDateTime{sec: sec, nsec: nsec, offset: int32(slot.Int64() - MaxOffset)}
}

func (OffsetDomain) Bounds() (OffsetDateTime, OffsetDateTime) {
	return MinOffsetDateTime, MaxOffsetDateTime
}

func (OffsetDomain) Origin() OffsetDateTime { return OffsetDateTime{} }

// Simplify proposes coarser local values at the same offset, then the same
// instant at UTC and the same local date-time at UTC.
func (OffsetDomain) Simplify(v OffsetDateTime) []OffsetDateTime {
	local := v.Local()
	simpler := simplerDateTimes(local)
	out := make([]OffsetDateTime, 0, len(simpler)+2)
	for _, dt := range simpler {
		out = append(out, OffsetDateTime{sec: dt.sec - int64(v.offset), nsec: dt.nsec, offset: v.offset})
	}
	return append(out, v.UTC(), OffsetDateTime{sec: local.sec, nsec: local.nsec})
}
