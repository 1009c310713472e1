package instant

import (
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(2024, 2, 29, 0, 0, 0, 0); err != nil {
		t.Fatalf("unexpected leap day error: %v", err)
	}
	if _, err := New(2023, 2, 29, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for Feb 29 in non-leap year")
	}
	if _, err := New(2023, 13, 1, 0, 0, 0, 0); err == nil {
		t.Fatal("expected month out of range")
	}
	if _, err := New(2023, 6, 1, 24, 0, 0, 0); err == nil {
		t.Fatal("expected hour out of range")
	}
	if _, err := New(2023, 6, 1, 0, 0, 0, 1_000_000); err == nil {
		t.Fatal("expected microsecond out of range")
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in, err := New(1995, 1, 12, 18, 23, 6, 123456)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := FromTime(in.Time()); got != in {
		t.Fatalf("round trip mismatch: %v != %v", got, in)
	}
	if loc := in.Time().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestSubDays(t *testing.T) {
	// 9039 days between these two dates.
	a := MustDate(2019, 10, 12)
	b := MustDate(1995, 1, 12)
	d := a.Sub(b)
	if d.WholeDays() != 9039 {
		t.Fatalf("expected 9039 days, got %d", d.WholeDays())
	}
	if h, m, s, us := d.Remainder(); h != 0 || m != 0 || s != 0 || us != 0 {
		t.Fatalf("expected no sub-day remainder, got %d:%d:%d.%d", h, m, s, us)
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	smaller, err := New(1995, 1, 12, 6, 30, 15, 250000)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	larger, err := New(2019, 10, 12, 18, 23, 6, 999999)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	d := larger.Sub(smaller)
	if got := smaller.Add(d); got != larger {
		t.Fatalf("add(sub) mismatch: %v != %v", got, larger)
	}
	// And the inverse direction.
	if got := larger.Add(d.Neg()); got != smaller {
		t.Fatalf("add(neg(sub)) mismatch: %v != %v", got, smaller)
	}
}

func TestAddDay(t *testing.T) {
	yesterday := MustDate(2019, 10, 11)
	if got := yesterday.Add(Days(1)); got != MustDate(2019, 10, 12) {
		t.Fatalf("expected 2019-10-12, got %v", got)
	}
	// Month rollover.
	if got := MustDate(2019, 1, 31).Add(Days(1)); got != MustDate(2019, 2, 1) {
		t.Fatalf("expected 2019-02-01, got %v", got)
	}
}

func TestDurationNormalization(t *testing.T) {
	d := NewDuration(0, 36, 0, 0, 0)
	if d.WholeDays() != 1 {
		t.Fatalf("expected 1 day, got %d", d.WholeDays())
	}
	h, _, _, _ := d.Remainder()
	if h != 12 {
		t.Fatalf("expected 12h remainder, got %d", h)
	}

	neg := NewDuration(0, 0, 0, -90, 0)
	if neg.WholeDays() != 0 {
		t.Fatalf("expected 0 days, got %d", neg.WholeDays())
	}
	if _, m, s, _ := neg.Remainder(); m != -1 || s != -30 {
		t.Fatalf("expected -1m -30s, got %dm %ds", m, s)
	}
}

func TestString(t *testing.T) {
	if got := MustDate(1995, 2, 27).String(); got != "1995-02-27" {
		t.Fatalf("date string: %s", got)
	}
	in, _ := New(2009, 6, 4, 22, 45, 0, 0)
	if got := in.String(); got != "2009-06-04 22:45:00" {
		t.Fatalf("datetime string: %s", got)
	}
}
