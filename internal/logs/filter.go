package logs

import (
	"strings"
	"time"

	"logdeck/internal/logparse"
)

// LevelAll disables level filtering.
const LevelAll = "all"

// Filter is a composable set of predicates applied to each parsed
// entry during a scan. The zero value passes everything. Filtered-out
// lines never consume window budget but still advance the scan.
type Filter struct {
	// Search is a case-insensitive substring matched against the raw
	// line, not the extracted message, so hits inside stripped
	// timestamps still count.
	Search string
	// Level must equal the entry level exactly; empty or "all" passes.
	Level string
	// StartDate and EndDate bound the entry timestamp to calendar
	// days, both inclusive. Entries without an extractable timestamp
	// always pass the date bounds; the escape hatch is deliberate and
	// matches how timestamp-less continuation lines should surface.
	StartDate time.Time
	EndDate   time.Time
}

// Matches reports whether the entry passes every configured predicate.
// Predicates are order-independent; the cheapest run first.
func (f Filter) Matches(entry logparse.Entry) bool {
	if f.Level != "" && f.Level != LevelAll && string(entry.Level) != f.Level {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(entry.Raw), strings.ToLower(f.Search)) {
		return false
	}
	if f.StartDate.IsZero() && f.EndDate.IsZero() {
		return true
	}
	ts, ok := parseEntryTime(entry.Timestamp)
	if !ok {
		return true
	}
	if !f.StartDate.IsZero() && ts.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && !ts.Before(f.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// entryTimeLayouts covers the timestamp shapes the templates extract.
// Comma milliseconds are normalized to a dot before parsing since Go
// layouts cannot express them.
var entryTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseEntryTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	normalized := strings.Replace(value, ",", ".", 1)
	for _, layout := range entryTimeLayouts {
		if ts, err := time.Parse(layout, normalized); err == nil {
			return ts, true
		}
	}
	// Syslog timestamps carry no year; assume the current one.
	if ts, err := time.Parse("Jan _2 15:04:05", normalized); err == nil {
		return ts.AddDate(time.Now().Year(), 0, 0), true
	}
	return time.Time{}, false
}

// ParseDateBound interprets a date-only string (2006-01-02) as a
// calendar-day boundary for Filter.StartDate / Filter.EndDate.
func ParseDateBound(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
