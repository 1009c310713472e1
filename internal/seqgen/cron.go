package seqgen

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"datenorm/internal/instant"
)

// CronRange produces the first periods activations of a standard
// five-field cron schedule (e.g. "0 9 * * 1-5") at or after start.
// Cron schedules have minute resolution; start's seconds and
// microseconds only matter for whether start itself can be the first
// activation.
func CronRange(start instant.Instant, spec string, periods int) (instant.Sequence, error) {
	if periods < 0 {
		return nil, &InvalidArgumentError{Op: "cron", Reason: fmt.Sprintf("negative periods %d", periods)}
	}

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, &InvalidArgumentError{Op: "cron", Reason: fmt.Sprintf("bad spec %q", spec), Err: err}
	}

	seq := make(instant.Sequence, 0, periods)
	// Schedule.Next is strictly-after; back off one second so a start
	// that falls exactly on an activation is included.
	t := start.Time().Add(-time.Second)
	for len(seq) < periods {
		t = sched.Next(t)
		if t.IsZero() {
			break
		}
		seq = append(seq, instant.FromTime(t))
	}
	return seq, nil
}
