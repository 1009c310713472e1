package parse

import (
	"errors"
	"testing"

	"datenorm/internal/instant"
)

// ref is a fixed reference instant so partial-input tests stay
// deterministic.
var ref = mustInstant(2019, 10, 12, 16, 55, 3, 0)

func mustInstant(y, mo, d, h, mi, s, us int) instant.Instant {
	in, err := instant.New(y, mo, d, h, mi, s, us)
	if err != nil {
		panic(err)
	}
	return in
}

func TestFreeFormComplete(t *testing.T) {
	tests := []struct {
		text     string
		dayFirst bool
		want     instant.Instant
	}{
		// ISO-style year-first dates are unambiguous: the flag must not matter.
		{"2001-06-04", false, instant.MustDate(2001, 6, 4)},
		{"2001-06-04", true, instant.MustDate(2001, 6, 4)},
		{"2019/10/12", false, instant.MustDate(2019, 10, 12)},

		// Ambiguous pairs are resolved by the flag.
		{"06-04-2001", false, instant.MustDate(2001, 6, 4)},
		{"06-04-2001", true, instant.MustDate(2001, 4, 6)},
		{"6/4/2001", false, instant.MustDate(2001, 6, 4)},
		{"6/4/2001", true, instant.MustDate(2001, 4, 6)},

		// A component above 12 forces the reading either way.
		{"21-06-1995", true, instant.MustDate(1995, 6, 21)},
		{"21-06-1995", false, instant.MustDate(1995, 6, 21)},
		{"21, 06, 1995", true, instant.MustDate(1995, 6, 21)},

		// Two-digit years widen around the 70 pivot.
		{"06-04-14", false, instant.MustDate(2014, 6, 4)},
		{"06-04-95", false, instant.MustDate(1995, 6, 4)},

		// Month names and ordinals.
		{"June 4th, 2009 10:45 pm", false, mustInstant(2009, 6, 4, 22, 45, 0, 0)},
		{"4th June 2009", false, instant.MustDate(2009, 6, 4)},
		{"March 17 1996", false, instant.MustDate(1996, 3, 17)},

		// Date plus clock.
		{"2019-10-12 16:55:03", false, mustInstant(2019, 10, 12, 16, 55, 3, 0)},
		{"2019-10-12 16:55:03.250000", false, mustInstant(2019, 10, 12, 16, 55, 3, 250000)},
		{"12:00am", false, mustInstantOn(ref, 0, 0, 0)},
	}

	for _, tc := range tests {
		got, err := FreeForm(tc.text, DayFirst(tc.dayFirst), Reference(ref))
		if err != nil {
			t.Errorf("FreeForm(%q, dayFirst=%v): %v", tc.text, tc.dayFirst, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FreeForm(%q, dayFirst=%v) = %v, want %v", tc.text, tc.dayFirst, got, tc.want)
		}
	}
}

func mustInstantOn(date instant.Instant, h, m, s int) instant.Instant {
	return mustInstant(date.Year, date.Month, date.Day, h, m, s, 0)
}

func TestFreeFormReferenceFill(t *testing.T) {
	tests := []struct {
		text string
		want instant.Instant
	}{
		// Month-year: day comes from the reference.
		{"06-1995", instant.MustDate(1995, 6, 12)},
		{"June 1995", instant.MustDate(1995, 6, 12)},
		{"1995-06", instant.MustDate(1995, 6, 12)},
		// Year only: month and day from the reference.
		{"1995", instant.MustDate(1995, 10, 12)},
		// Time only: the whole date from the reference.
		{"10:45 pm", mustInstant(2019, 10, 12, 22, 45, 0, 0)},
		// Month-day: year from the reference.
		{"June 4th", instant.MustDate(2019, 6, 4)},
	}

	for _, tc := range tests {
		got, err := FreeForm(tc.text, Reference(ref))
		if err != nil {
			t.Errorf("FreeForm(%q): %v", tc.text, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FreeForm(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestFreeFormReferenceDayClamped(t *testing.T) {
	// Reference day 31 does not exist in June.
	endOfMonth := instant.MustDate(2019, 1, 31)
	got, err := FreeForm("June 1995", Reference(endOfMonth))
	if err != nil {
		t.Fatalf("FreeForm: %v", err)
	}
	if got != instant.MustDate(1995, 6, 30) {
		t.Fatalf("expected clamp to June 30, got %v", got)
	}
}

func TestFreeFormUnparseable(t *testing.T) {
	for _, text := range []string{"", "   ", "not a date", "hello world 99999"} {
		_, err := FreeForm(text, Reference(ref))
		if err == nil {
			t.Errorf("FreeForm(%q): expected error", text)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("FreeForm(%q): expected *ParseError, got %T", text, err)
			continue
		}
		if pe.Index != -1 {
			t.Errorf("FreeForm(%q): scalar index should be -1, got %d", text, pe.Index)
		}
	}
}

func TestFreeFormNoClockReadWhenComplete(t *testing.T) {
	// A complete string must not consult the reference at all; parsing
	// the same text with wildly different references must agree.
	a, err := FreeForm("2001-06-04 01:02:03", Reference(instant.MustDate(1970, 1, 1)))
	if err != nil {
		t.Fatalf("FreeForm: %v", err)
	}
	b, err := FreeForm("2001-06-04 01:02:03", Reference(instant.MustDate(2099, 12, 31)))
	if err != nil {
		t.Fatalf("FreeForm: %v", err)
	}
	if a != b {
		t.Fatalf("complete input depended on reference: %v != %v", a, b)
	}
}
