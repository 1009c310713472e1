package instant

import (
	"fmt"
	"time"
)

const microsPerDay = 24 * 60 * 60 * 1_000_000

// Duration is a signed span of elapsed time, held as whole days plus a
// sub-day remainder in microseconds. Both parts carry the same sign and
// the remainder is always smaller than one day in magnitude.
type Duration struct {
	days   int64
	micros int64
}

// NewDuration builds a Duration from its component counts. Components
// may individually exceed their conventional ranges (e.g. 36 hours);
// the result is normalized.
func NewDuration(days, hours, minutes, seconds, microseconds int64) Duration {
	total := days*microsPerDay +
		hours*3600*1_000_000 +
		minutes*60*1_000_000 +
		seconds*1_000_000 +
		microseconds
	return normalize(total)
}

// Days returns a Duration of n whole days.
func Days(n int64) Duration {
	return Duration{days: n}
}

// FromStd converts a time.Duration, truncating sub-microsecond
// precision.
func FromStd(d time.Duration) Duration {
	return normalize(d.Microseconds())
}

func normalize(totalMicros int64) Duration {
	return Duration{
		days:   totalMicros / microsPerDay,
		micros: totalMicros % microsPerDay,
	}
}

// WholeDays returns the day component.
func (d Duration) WholeDays() int64 { return d.days }

// Remainder returns the sub-day component broken into clock units, all
// carrying the Duration's sign.
func (d Duration) Remainder() (hours, minutes, seconds, microseconds int64) {
	m := d.micros
	hours = m / (3600 * 1_000_000)
	m %= 3600 * 1_000_000
	minutes = m / (60 * 1_000_000)
	m %= 60 * 1_000_000
	seconds = m / 1_000_000
	microseconds = m % 1_000_000
	return
}

// Std converts the Duration into a time.Duration. Spans beyond roughly
// ±292 years overflow time.Duration; datenorm does not guard against
// that since normalized calendar data stays far inside the range.
func (d Duration) Std() time.Duration {
	return time.Duration(d.days*microsPerDay+d.micros) * time.Microsecond
}

// Neg returns the negated Duration.
func (d Duration) Neg() Duration {
	return Duration{days: -d.days, micros: -d.micros}
}

// IsZero reports whether the Duration spans no time at all.
func (d Duration) IsZero() bool { return d.days == 0 && d.micros == 0 }

func (d Duration) String() string {
	h, m, s, us := d.Remainder()
	if us != 0 {
		return fmt.Sprintf("%dd%02d:%02d:%02d.%06d", d.days, abs(h), abs(m), abs(s), abs(us))
	}
	if h == 0 && m == 0 && s == 0 {
		return fmt.Sprintf("%dd", d.days)
	}
	return fmt.Sprintf("%dd%02d:%02d:%02d", d.days, abs(h), abs(m), abs(s))
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
