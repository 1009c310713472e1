package parse

import "datenorm/internal/instant"

// Option adjusts free-form parsing behavior.
type Option func(*options)

type options struct {
	dayFirst  bool
	reference *instant.Instant
}

// DayFirst selects the day-first interpretation for numeric dates whose
// first two components could be either (day, month) or (month, day).
// A component larger than 12 always forces the other reading regardless
// of this flag.
func DayFirst(v bool) Option {
	return func(o *options) { o.dayFirst = v }
}

// Reference supplies the instant whose fields fill any calendar field
// absent from the input. Without this option the reference is the
// system clock at call time, which makes results of partial inputs
// time-dependent; tests and other deterministic callers should always
// set it.
func Reference(ref instant.Instant) Option {
	return func(o *options) { o.reference = &ref }
}

func buildOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) ref() instant.Instant {
	if o.reference != nil {
		return *o.reference
	}
	return instant.Now()
}
