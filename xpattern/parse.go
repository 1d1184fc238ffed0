package xpattern

import (
	"fmt"

	"github.com/vitalvas/propkit/chrono/civil"
)

type parseState struct {
	text   string
	values [fieldCount]int64
	set    [fieldCount]bool
}

func (st *parseState) put(field Field, v int64, pos int) error {
	if st.set[field] && st.values[field] != v {
		return st.fail(pos, "conflicting values for %s", field)
	}
	st.set[field] = true
	st.values[field] = v
	return nil
}

func (st *parseState) get(field Field) (int64, bool) {
	return st.values[field], st.set[field]
}

func (st *parseState) fail(pos int, format string, args ...any) error {
	return &ParseError{Text: st.text, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (st *parseState) invalid(format string, args ...any) error {
	return st.fail(-1, format, args...)
}

// Parse reads text with the layout and resolves the parsed fields.
// The whole text must be consumed. The returned error is a *ParseError.
func (l *Layout) Parse(text string) (Fields, error) {
	st := &parseState{text: text}

	pos, err := parseNodes(l.nodes, st, 0)
	if err != nil {
		return Fields{}, err
	}
	if pos != len(text) {
		return Fields{}, st.fail(pos, "unparsed text found")
	}

	return st.resolve()
}

func (st *parseState) resolve() (Fields, error) {
	var f Fields

	if err := st.resolveDate(&f); err != nil {
		return Fields{}, err
	}
	if err := st.resolveTime(&f); err != nil {
		return Fields{}, err
	}
	if offset, ok := st.get(FieldOffset); ok {
		f.HasOffset = true
		f.Offset = int(offset)
	}

	return f, nil
}

func (st *parseState) resolveDate(f *Fields) error {
	var (
		year    int64
		hasYear bool
	)

	era, hasEra := st.get(FieldEra)
	if yoe, ok := st.get(FieldYearOfEra); ok {
		if yoe < 1 {
			return st.invalid("year-of-era %d must be positive", yoe)
		}
		year, hasYear = yoe, true
		if hasEra && era == 0 {
			year = 1 - yoe
		}
	}

	if y, ok := st.get(FieldYear); ok {
		if hasYear && y != year {
			return st.invalid("conflicting values for year and year-of-era")
		}
		if hasEra && !st.set[FieldYearOfEra] && (y > 0) != (era == 1) {
			return st.invalid("conflicting values for year and era")
		}
		year, hasYear = y, true
	}

	month, hasMonth := st.get(FieldMonth)
	day, hasDay := st.get(FieldDayOfMonth)

	if !hasYear && !hasMonth && !hasDay {
		return nil
	}
	if !hasYear || !hasMonth || !hasDay {
		return st.invalid("incomplete date, year, month and day are all required")
	}
	if month < 1 || month > 12 {
		return st.invalid("month %d out of range", month)
	}
	if !civil.Valid(year, int(month), int(day)) {
		return st.invalid("invalid date %d-%02d-%02d", year, month, day)
	}

	f.HasDate = true
	f.Year, f.Month, f.Day = year, int(month), int(day)

	if dow, ok := st.get(FieldDayOfWeek); ok {
		days := civil.DaysFromCivil(year, int(month), int(day))
		if actual := int64(civil.ISOWeekday(civil.WeekdayOf(days))); actual != dow {
			return st.invalid("day-of-week does not match date")
		}
	}

	return nil
}

func (st *parseState) resolveTime(f *Fields) error {
	var (
		hour    int64
		hasHour bool
	)

	setHour := func(v int64) error {
		if hasHour && v != hour {
			return st.invalid("conflicting values for hour")
		}
		hour, hasHour = v, true
		return nil
	}

	if h, ok := st.get(FieldHourOfDay); ok {
		if h > 23 {
			return st.invalid("hour-of-day %d out of range", h)
		}
		if err := setHour(h); err != nil {
			return err
		}
	}

	if k, ok := st.get(FieldClockHourOfDay); ok {
		if k < 1 || k > 24 {
			return st.invalid("clock-hour-of-day %d out of range", k)
		}
		if err := setHour(k % 24); err != nil {
			return err
		}
	}

	ap, hasAmPm := st.get(FieldAmPm)
	for _, field := range []Field{FieldHourOfAmPm, FieldClockHourOfAmPm} {
		v, ok := st.get(field)
		if !ok {
			continue
		}
		if !hasAmPm {
			return st.invalid("%s requires an am-pm marker", field)
		}
		if field == FieldHourOfAmPm && v > 11 {
			return st.invalid("hour-of-am-pm %d out of range", v)
		}
		if field == FieldClockHourOfAmPm && (v < 1 || v > 12) {
			return st.invalid("clock-hour-of-am-pm %d out of range", v)
		}
		if err := setHour(ap*12 + v%12); err != nil {
			return err
		}
	}

	if hasHour && hasAmPm && hour/12 != ap {
		return st.invalid("conflicting values for hour and am-pm")
	}

	minute, hasMinute := st.get(FieldMinute)
	second, hasSecond := st.get(FieldSecond)
	nano, hasNano := st.get(FieldNano)

	if !hasHour {
		if hasMinute || hasSecond || hasNano {
			return st.invalid("incomplete time, hour is required")
		}
		return nil
	}

	switch {
	case minute > 59:
		return st.invalid("minute %d out of range", minute)
	case second > 59:
		return st.invalid("second %d out of range", second)
	case nano > 999_999_999:
		return st.invalid("nano-of-second %d out of range", nano)
	}

	f.HasTime = true
	f.Hour, f.Minute, f.Second, f.Nano = int(hour), int(minute), int(second), int(nano)
	return nil
}
