package ics

import (
	"strings"
	"testing"

	"datenorm/internal/instant"
)

func TestExportImportRoundTrip(t *testing.T) {
	seq := instant.Sequence{
		instant.MustDate(2000, 1, 1),
		instant.MustDate(2000, 1, 2),
		instant.MustDate(2000, 2, 29),
	}

	body, err := Export(seq, ExportConfig{Name: "test", Summary: "payday"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(string(body), "SUMMARY:payday") {
		t.Fatalf("summary missing from payload:\n%s", body)
	}

	got, err := ImportStarts(body)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(got) != len(seq) {
		t.Fatalf("expected %d events, got %d", len(seq), len(got))
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Fatalf("event %d: got %v, want %v", i, got[i], seq[i])
		}
	}
}

func TestExportEmpty(t *testing.T) {
	if _, err := Export(nil, ExportConfig{}); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestImportEmpty(t *testing.T) {
	if _, err := ImportStarts(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := ImportStarts([]byte("not an ics file")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
