package ics

import (
	"bytes"
	"errors"

	ical "github.com/arran4/golang-ical"

	"datenorm/internal/instant"
	appLog "datenorm/internal/log"
)

// ImportStarts reads an iCalendar payload and returns the DTSTART of
// every VEVENT, in calendar order, as an instant sequence. It relies on
// the library's VTIMEZONE/TZID handling to construct proper time.Time
// values; the location is then dropped, since instants are zoneless.
//
// Events without a readable DTSTART are skipped with a log line rather
// than failing the whole payload; a calendar feed routinely carries a
// few malformed events.
func ImportStarts(body []byte) (instant.Sequence, error) {
	if len(body) == 0 {
		return nil, errors.New("ics: empty payload")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		appLog.Error("ics parse failed", err)
		return nil, err
	}

	seq := make(instant.Sequence, 0)
	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			uid := ""
			if p := ev.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
				uid = p.Value
			}
			appLog.Error("ics event missing DTSTART, skipped", err, "uid", uid)
			continue
		}
		seq = append(seq, instant.FromTime(start))
	}

	appLog.Debug("ics import completed", "event_count", len(seq))
	return seq, nil
}
