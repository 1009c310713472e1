package parse

import (
	timefmt "github.com/itchyny/timefmt-go"

	"datenorm/internal/instant"
)

// WithFormat parses text strictly against an strftime-style format
// specification (e.g. "%m-%Y", "%Y-%m-%d %H:%M:%S").
//
// Unlike FreeForm, fields the format omits receive fixed strptime
// defaults (year 1900, first day of month, midnight) rather than being
// filled from the current instant, so results never depend on the
// clock. Fails with *FormatMismatchError when the text does not
// conform to the format exactly.
func WithFormat(text, format string) (instant.Instant, error) {
	t, err := timefmt.Parse(text, format)
	if err != nil {
		return instant.Instant{}, &FormatMismatchError{Text: text, Format: format, Err: err}
	}
	return instant.FromTime(t), nil
}

// Format renders an Instant through an strftime-style format string.
// It is the inverse of WithFormat: parsing the output with the same
// format reproduces the instant, provided the format encodes every
// non-default field.
func Format(in instant.Instant, format string) string {
	return timefmt.Format(in.Time(), format)
}
