// Package seqgen produces ordered sequences of instants from a start
// point and a stepping rule: a fixed duration, an RFC 5545 recurrence
// rule, or a cron schedule.
package seqgen

import (
	"fmt"

	"datenorm/internal/instant"
)

// InvalidArgumentError reports a structural argument outside the
// accepted domain, such as a negative period count or an unparseable
// recurrence rule.
type InvalidArgumentError struct {
	Op     string
	Reason string
	Err    error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("seqgen: %s: %s", e.Op, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error { return e.Err }

// Range produces periods instants starting at start, each subsequent
// value offset by step from the previous. periods == 0 yields an empty
// sequence; periods < 0 fails with *InvalidArgumentError.
func Range(start instant.Instant, periods int, step instant.Duration) (instant.Sequence, error) {
	if periods < 0 {
		return nil, &InvalidArgumentError{Op: "range", Reason: fmt.Sprintf("negative periods %d", periods)}
	}
	seq := make(instant.Sequence, 0, periods)
	cur := start
	for i := 0; i < periods; i++ {
		seq = append(seq, cur)
		cur = cur.Add(step)
	}
	return seq, nil
}
