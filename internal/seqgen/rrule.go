package seqgen

import (
	"fmt"

	"github.com/teambition/rrule-go"

	"datenorm/internal/instant"
)

// RRuleRange produces the first periods occurrences of an RFC 5545
// recurrence rule (e.g. "FREQ=WEEKLY;BYDAY=MO,FR") anchored at start.
// The rule's own DTSTART, if any, is overridden by start; a COUNT or
// UNTIL inside the rule may end the sequence before periods values are
// produced. Calendar-aware frequencies (monthly, yearly, by-weekday)
// are handled by the rule engine and need no day arithmetic here.
func RRuleRange(start instant.Instant, rule string, periods int) (instant.Sequence, error) {
	if periods < 0 {
		return nil, &InvalidArgumentError{Op: "rrule", Reason: fmt.Sprintf("negative periods %d", periods)}
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, &InvalidArgumentError{Op: "rrule", Reason: fmt.Sprintf("bad rule %q", rule), Err: err}
	}
	r.DTStart(start.Time())

	seq := make(instant.Sequence, 0, periods)
	next := r.Iterator()
	for len(seq) < periods {
		t, ok := next()
		if !ok {
			break
		}
		seq = append(seq, instant.FromTime(t))
	}
	return seq, nil
}
