package logparse

import (
	"regexp"
	"strings"
)

// Timestamp patterns tried in priority order; first match wins. The
// comma-millisecond form sits before the plain form because the plain
// pattern would otherwise claim the bare prefix of a comma timestamp.
var defaultTimestampPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d+`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?`),
	regexp.MustCompile(`^[A-Z][a-z]{2} {1,2}\d{1,2} \d{2}:\d{2}:\d{2}`),
}

var levelMarkerPattern = regexp.MustCompile(`(?i)^[\[(]?(error|warning|warn|critical|fatal|notice|info|debug|trace)[\])]?:?\s+`)

func parseDefault(raw string, lineNumber int) Entry {
	entry := Entry{
		Level:      inferLevel(raw),
		Message:    raw,
		LineNumber: lineNumber,
		Raw:        raw,
	}

	for _, pattern := range defaultTimestampPatterns {
		match := pattern.FindString(raw)
		if match == "" {
			continue
		}
		entry.Timestamp = match
		entry.Message = stripLevelMarker(raw[len(match):])
		break
	}

	return entry
}

// stripLevelMarker removes separator characters and a leading level
// token from the text that follows a matched timestamp.
func stripLevelMarker(rest string) string {
	rest = trimSeparators(rest)
	if marker := levelMarkerPattern.FindString(rest); marker != "" {
		rest = trimSeparators(rest[len(marker):])
	}
	return rest
}

func trimSeparators(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "-:|"))
}

// inferLevel runs the substring heuristic over the entire original
// line, not the stripped message.
func inferLevel(line string) Level {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error"),
		strings.Contains(lower, "exception"),
		strings.Contains(lower, "fatal"),
		strings.Contains(lower, "critical"):
		return LevelError
	case strings.Contains(lower, "warn"):
		return LevelWarning
	case strings.Contains(lower, "debug"),
		strings.Contains(lower, "trace"):
		return LevelDebug
	default:
		return LevelInfo
	}
}
