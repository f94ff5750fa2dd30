package codec

import (
	"testing"
	"time"

	soaplib "github.com/luckyluke/soaplib"
)

func TestParseDate_Basic(t *testing.T) {
	got, err := ParseDate("2020-04-01")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got.Year() != 2020 || got.Month() != time.April || got.Day() != 1 {
		t.Fatalf("unexpected date: %v", got)
	}
	if FormatDate(got) != "2020-04-01" {
		t.Fatalf("roundtrip mismatch: %s", FormatDate(got))
	}
}

func TestParseDate_Malformed(t *testing.T) {
	for _, s := range []string{"2020-4-1", "20200401", "2020-04-01T00:00:00", "not-a-date"} {
		_, err := ParseDate(s)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		iss, ok := soaplib.AsIssues(err)
		if !ok || iss[0].Code != soaplib.CodeParseError {
			t.Fatalf("expected parse_error issues for %q, got %v", s, err)
		}
	}
}

func TestParseDateTime_Precedence(t *testing.T) {
	// UTC pattern wins over local even though local matches the prefix.
	utc, err := ParseDateTime("2020-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("utc parse err: %v", err)
	}
	if utc.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", utc.Location())
	}

	off, err := ParseDateTime("2020-01-01T00:00:00+02:00")
	if err != nil {
		t.Fatalf("offset parse err: %v", err)
	}
	_, secs := off.Zone()
	if secs != 2*60*60 {
		t.Fatalf("expected +120min offset, got %d secs", secs)
	}

	naive, err := ParseDateTime("2020-01-01T00:00:00")
	if err != nil {
		t.Fatalf("naive parse err: %v", err)
	}
	if naive.Location() != time.Local {
		t.Fatalf("expected local zone for naive text, got %v", naive.Location())
	}

	// All three share the same underlying fields.
	for _, v := range []time.Time{utc, off, naive} {
		if v.Year() != 2020 || v.Month() != time.January || v.Day() != 1 ||
			v.Hour() != 0 || v.Minute() != 0 || v.Second() != 0 {
			t.Fatalf("field mismatch: %v", v)
		}
	}
}

func TestParseDateTime_NegativeOffset(t *testing.T) {
	got, err := ParseDateTime("2020-01-01T12:00:00-05:30")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	_, secs := got.Zone()
	if secs != -(5*60+30)*60 {
		t.Fatalf("expected -330min offset, got %d secs", secs)
	}
}

func TestParseDateTime_Fraction(t *testing.T) {
	got, err := ParseDateTime("2020-01-01T00:00:00.25Z")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if got.Nanosecond() != 250000*1000 {
		t.Fatalf("expected 250000µs, got %dns", got.Nanosecond())
	}
}

func TestFormatDateTime_Canonical(t *testing.T) {
	v := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if s := FormatDateTime(v); s != "2020-01-01T00:00:00Z" {
		t.Fatalf("unexpected format: %s", s)
	}
	v = time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("", 2*60*60))
	if s := FormatDateTime(v); s != "2020-01-01T00:00:00+02:00" {
		t.Fatalf("unexpected format: %s", s)
	}
}

func TestParseDateTime_Malformed(t *testing.T) {
	_, err := ParseDateTime("yesterday")
	if err == nil {
		t.Fatalf("expected error")
	}
	iss, ok := soaplib.AsIssues(err)
	if !ok || iss[0].Code != soaplib.CodeParseError {
		t.Fatalf("expected parse_error issues, got %v", err)
	}
	if iss[0].Params["value"] != "yesterday" {
		t.Fatalf("expected offending literal in params, got %v", iss[0].Params)
	}
}
