package markdown

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

// InvalidDate is rendered in place of a formatted date when the raw value
// cannot be read as a calendar date.
const InvalidDate = "Invalid Date"

const (
	defaultDateLocale = monday.LocaleEnUS
	defaultDateLayout = "January 2, 2006"
)

// DateFormatter renders a parsed date for display.
type DateFormatter interface {
	Format(t time.Time) string
}

// LocaleFormatter renders dates with localized month and day names.
type LocaleFormatter struct {
	Locale monday.Locale
	Layout string
}

// NewLocaleFormatter builds a formatter for locale (e.g. "en_US") and a Go
// time layout. Blank arguments fall back to US English long dates.
func NewLocaleFormatter(locale, layout string) LocaleFormatter {
	f := LocaleFormatter{
		Locale: monday.Locale(strings.TrimSpace(locale)),
		Layout: layout,
	}
	if f.Locale == "" {
		f.Locale = defaultDateLocale
	}
	if strings.TrimSpace(f.Layout) == "" {
		f.Layout = defaultDateLayout
	}
	return f
}

// Format satisfies DateFormatter.
func (f LocaleFormatter) Format(t time.Time) string {
	return monday.Format(t, f.Layout, f.Locale)
}

// ParseDate reads raw as a calendar date. Values without zone information are
// interpreted in UTC so the rendered day never shifts with the host zone.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate parses raw and renders it with formatter. InvalidDate is
// returned when raw is not a date.
func FormatDate(raw string, formatter DateFormatter) (time.Time, string) {
	t, ok := ParseDate(raw)
	if !ok {
		return time.Time{}, InvalidDate
	}
	if formatter == nil {
		formatter = NewLocaleFormatter("", "")
	}
	return t, formatter.Format(t.UTC())
}
