package xpattern

import "github.com/vitalvas/propkit/chrono/civil"

// Field identifies a date-time field a pattern letter reads or writes.
type Field uint8

const (
	FieldEra Field = iota
	FieldYearOfEra
	FieldYear
	FieldMonth
	FieldDayOfMonth
	FieldDayOfWeek
	FieldAmPm
	FieldHourOfDay
	FieldClockHourOfDay
	FieldHourOfAmPm
	FieldClockHourOfAmPm
	FieldMinute
	FieldSecond
	FieldNano
	FieldOffset

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldEra:             "era",
	FieldYearOfEra:       "year-of-era",
	FieldYear:            "year",
	FieldMonth:           "month",
	FieldDayOfMonth:      "day-of-month",
	FieldDayOfWeek:       "day-of-week",
	FieldAmPm:            "am-pm",
	FieldHourOfDay:       "hour-of-day",
	FieldClockHourOfDay:  "clock-hour-of-day",
	FieldHourOfAmPm:      "hour-of-am-pm",
	FieldClockHourOfAmPm: "clock-hour-of-am-pm",
	FieldMinute:          "minute",
	FieldSecond:          "second",
	FieldNano:            "nano-of-second",
	FieldOffset:          "offset",
}

func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "unknown"
}

// Fields is the resolved content of a parsed text, and the input of Format.
// Each group is only meaningful when its Has flag is set.
type Fields struct {
	HasDate bool
	Year    int64
	Month   int
	Day     int

	HasTime bool
	Hour    int
	Minute  int
	Second  int
	Nano    int

	HasOffset bool
	Offset    int // seconds east of UTC
}

// value derives the raw value of a single field for formatting.
func (f Fields) value(field Field) (int64, bool) {
	switch field {
	case FieldEra, FieldYearOfEra, FieldYear, FieldMonth, FieldDayOfMonth, FieldDayOfWeek:
		if !f.HasDate {
			return 0, false
		}
	case FieldOffset:
		if !f.HasOffset {
			return 0, false
		}
		return int64(f.Offset), true
	default:
		if !f.HasTime {
			return 0, false
		}
	}

	switch field {
	case FieldEra:
		if f.Year > 0 {
			return 1, true
		}
		return 0, true
	case FieldYearOfEra:
		if f.Year > 0 {
			return f.Year, true
		}
		return 1 - f.Year, true
	case FieldYear:
		return f.Year, true
	case FieldMonth:
		return int64(f.Month), true
	case FieldDayOfMonth:
		return int64(f.Day), true
	case FieldDayOfWeek:
		days := civil.DaysFromCivil(f.Year, f.Month, f.Day)
		return int64(civil.ISOWeekday(civil.WeekdayOf(days))), true
	case FieldAmPm:
		return int64(f.Hour / 12), true
	case FieldHourOfDay:
		return int64(f.Hour), true
	case FieldClockHourOfDay:
		if f.Hour == 0 {
			return 24, true
		}
		return int64(f.Hour), true
	case FieldHourOfAmPm:
		return int64(f.Hour % 12), true
	case FieldClockHourOfAmPm:
		if h := f.Hour % 12; h != 0 {
			return int64(h), true
		}
		return 12, true
	case FieldMinute:
		return int64(f.Minute), true
	case FieldSecond:
		return int64(f.Second), true
	case FieldNano:
		return int64(f.Nano), true
	}

	return 0, false
}

var (
	monthsShort = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	monthsFull  = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	weekdaysShort = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weekdaysFull  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	erasShort     = []string{"BC", "AD"}
	erasFull      = []string{"Before Christ", "Anno Domini"}
	amPm          = []string{"AM", "PM"}
)
