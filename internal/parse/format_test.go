package parse

import (
	"errors"
	"testing"

	"datenorm/internal/instant"
)

func TestWithFormat(t *testing.T) {
	// Omitted fields take fixed strptime defaults, not the clock:
	// "%m-%Y" yields the first of the month at midnight.
	got, err := WithFormat("06-1995", "%m-%Y")
	if err != nil {
		t.Fatalf("WithFormat: %v", err)
	}
	if got != instant.MustDate(1995, 6, 1) {
		t.Fatalf("expected 1995-06-01, got %v", got)
	}

	got, err = WithFormat("2019-10-12 16:55:03", "%Y-%m-%d %H:%M:%S")
	if err != nil {
		t.Fatalf("WithFormat: %v", err)
	}
	if got != mustInstant(2019, 10, 12, 16, 55, 3, 0) {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestWithFormatMismatch(t *testing.T) {
	for _, tc := range []struct{ text, format string }{
		{"June 1995", "%m-%Y"},
		{"1995/06", "%m-%Y"},
		{"", "%Y"},
	} {
		_, err := WithFormat(tc.text, tc.format)
		if err == nil {
			t.Errorf("WithFormat(%q, %q): expected error", tc.text, tc.format)
			continue
		}
		var fe *FormatMismatchError
		if !errors.As(err, &fe) {
			t.Errorf("WithFormat(%q, %q): expected *FormatMismatchError, got %T", tc.text, tc.format, err)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// Parsing the formatted value back with the same format reproduces
	// the instant, for formats covering all non-default fields.
	values := []instant.Instant{
		mustInstant(1995, 2, 27, 0, 0, 0, 0),
		mustInstant(2019, 10, 12, 16, 55, 3, 0),
		mustInstant(2000, 1, 1, 23, 59, 59, 0),
	}
	const format = "%Y-%m-%d %H:%M:%S"
	for _, in := range values {
		text := Format(in, format)
		got, err := WithFormat(text, format)
		if err != nil {
			t.Errorf("round trip of %v: %v", in, err)
			continue
		}
		if got != in {
			t.Errorf("round trip of %v via %q: got %v", in, text, got)
		}
	}
}
