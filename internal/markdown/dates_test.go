package markdown

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-01-01")
	if !ok {
		t.Fatal("expected 2024-01-01 to parse")
	}
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	for _, raw := range []string{"", "   ", "not a date"} {
		if _, ok := ParseDate(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestFormatDate(t *testing.T) {
	_, formatted := FormatDate("2024-01-01", nil)
	if formatted != "January 1, 2024" {
		t.Fatalf("expected long US date, got %q", formatted)
	}

	parsed, formatted := FormatDate("garbage", nil)
	if formatted != InvalidDate {
		t.Fatalf("expected %q, got %q", InvalidDate, formatted)
	}
	if !parsed.IsZero() {
		t.Fatalf("expected zero time for invalid date, got %v", parsed)
	}
}

func TestLocaleFormatterSwapsConvention(t *testing.T) {
	day := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	us := NewLocaleFormatter("", "")
	if got := us.Format(day); got != "October 1, 2024" {
		t.Fatalf("expected US format, got %q", got)
	}

	fr := NewLocaleFormatter("fr_FR", "2 January 2006")
	if got := fr.Format(day); got != "1 octobre 2024" {
		t.Fatalf("expected French format, got %q", got)
	}
}

type fixedFormatter string

func (f fixedFormatter) Format(time.Time) string { return string(f) }

func TestFormatDateUsesInjectedFormatter(t *testing.T) {
	_, formatted := FormatDate("2023-06-15", fixedFormatter("custom"))
	if formatted != "custom" {
		t.Fatalf("expected injected formatter output, got %q", formatted)
	}
}
