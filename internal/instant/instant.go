// Package instant provides the calendar value types used throughout
// datenorm: Instant, a fully resolved zoneless point on the proleptic
// Gregorian calendar, and Duration, a signed span of elapsed time with
// microsecond resolution.
//
// The standard library time.Time always carries a timezone and a
// monotonic clock reading, neither of which belongs in a normalized
// calendar value. Instant keeps only the seven calendar/clock fields
// and converts to and from time.Time (in UTC) at the edges.
package instant

import (
	"fmt"
	"time"
)

// Instant is an immutable {year, month, day, hour, minute, second,
// microsecond} value. The zero value is the zero instant (year 0,
// January 1, midnight) and is valid.
type Instant struct {
	Year        int
	Month       int // 1..12
	Day         int // 1..31, valid for Month/Year
	Hour        int // 0..23
	Minute      int // 0..59
	Second      int // 0..59
	Microsecond int // 0..999999
}

// New builds an Instant from all seven fields, validating each against
// its conventional calendar range (including month length and leap
// years).
func New(year, month, day, hour, minute, second, microsecond int) (Instant, error) {
	in := Instant{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        hour,
		Minute:      minute,
		Second:      second,
		Microsecond: microsecond,
	}
	if err := in.validate(); err != nil {
		return Instant{}, err
	}
	return in, nil
}

// Date builds a date-only Instant (midnight).
func Date(year, month, day int) (Instant, error) {
	return New(year, month, day, 0, 0, 0, 0)
}

// MustDate is Date but panics on invalid input. Intended for tests and
// literals with constant arguments.
func MustDate(year, month, day int) Instant {
	in, err := Date(year, month, day)
	if err != nil {
		panic(err)
	}
	return in
}

// FromTime converts a time.Time into an Instant, dropping the location.
// Sub-microsecond precision is truncated.
func FromTime(t time.Time) Instant {
	return Instant{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / 1000,
	}
}

// Now returns the Instant at invocation time, read from the system
// clock. Non-deterministic; callers needing determinism should thread
// a fixed reference Instant instead.
func Now() Instant {
	return FromTime(time.Now())
}

// Time converts the Instant into a time.Time in UTC.
func (in Instant) Time() time.Time {
	return time.Date(in.Year, time.Month(in.Month), in.Day,
		in.Hour, in.Minute, in.Second, in.Microsecond*1000, time.UTC)
}

// validate checks every field against its calendar range. It relies on
// time.Date normalizing out-of-range values: if the round trip changes
// any field, the input was invalid.
func (in Instant) validate() error {
	if in.Month < 1 || in.Month > 12 {
		return fmt.Errorf("instant: month %d out of range", in.Month)
	}
	if in.Day < 1 || in.Day > 31 {
		return fmt.Errorf("instant: day %d out of range", in.Day)
	}
	if in.Hour < 0 || in.Hour > 23 || in.Minute < 0 || in.Minute > 59 || in.Second < 0 || in.Second > 59 {
		return fmt.Errorf("instant: clock %02d:%02d:%02d out of range", in.Hour, in.Minute, in.Second)
	}
	if in.Microsecond < 0 || in.Microsecond > 999999 {
		return fmt.Errorf("instant: microsecond %d out of range", in.Microsecond)
	}
	if got := FromTime(in.Time()); got != in {
		// time.Date rolled the value over, e.g. Feb 30 -> Mar 2.
		return fmt.Errorf("instant: %04d-%02d-%02d is not a calendar date", in.Year, in.Month, in.Day)
	}
	return nil
}

// Equal reports whether two Instants denote the same point.
func (in Instant) Equal(o Instant) bool { return in == o }

// Before reports whether in is strictly earlier than o.
func (in Instant) Before(o Instant) bool { return in.Time().Before(o.Time()) }

// After reports whether in is strictly later than o.
func (in Instant) After(o Instant) bool { return in.Time().After(o.Time()) }

// Add returns the Instant offset by d. The receiver is not modified.
func (in Instant) Add(d Duration) Instant {
	return FromTime(in.Time().Add(d.Std()))
}

// Sub returns the Duration elapsed from o to in (in - o). Adding the
// result back to o yields in exactly.
func (in Instant) Sub(o Instant) Duration {
	return FromStd(in.Time().Sub(o.Time()))
}

// String renders the Instant in an ISO-like form, omitting the clock
// part when it is midnight.
func (in Instant) String() string {
	if in.Hour == 0 && in.Minute == 0 && in.Second == 0 && in.Microsecond == 0 {
		return fmt.Sprintf("%04d-%02d-%02d", in.Year, in.Month, in.Day)
	}
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", in.Year, in.Month, in.Day, in.Hour, in.Minute, in.Second)
	if in.Microsecond != 0 {
		s += fmt.Sprintf(".%06d", in.Microsecond)
	}
	return s
}

// Sequence is an ordered list of Instants, preserving the order of the
// inputs it was produced from.
type Sequence []Instant

// Times converts the sequence into time.Time values (UTC).
func (s Sequence) Times() []time.Time {
	out := make([]time.Time, len(s))
	for i, in := range s {
		out[i] = in.Time()
	}
	return out
}
