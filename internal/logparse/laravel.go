package logparse

import (
	"regexp"
	"strings"
)

// [2024-12-10 08:00:01] production.WARNING: slow query {"ms":500}
var laravelLinePattern = regexp.MustCompile(`^\[([^\]]+)\]\s+([\w-]+)\.([A-Za-z]+):\s?(.*)$`)

var laravelStackFramePattern = regexp.MustCompile(`^\s*#\d+`)

func parseLaravel(raw string, lineNumber int) Entry {
	entry := Entry{
		Level:      LevelInfo,
		Message:    raw,
		LineNumber: lineNumber,
		Raw:        raw,
	}

	if m := laravelLinePattern.FindStringSubmatch(raw); m != nil {
		entry.Timestamp = m[1]
		entry.Level = laravelLevel(m[3])
		entry.Message = strings.TrimSpace(m[4])
		return entry
	}

	// Continuation lines of an exception report carry no header but
	// still belong to the error: classify obvious exception text and
	// stack frames accordingly.
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "exception") || strings.Contains(lower, "error") || strings.Contains(lower, "fatal") {
		entry.Level = LevelError
	} else if laravelStackFramePattern.MatchString(raw) {
		entry.Level = LevelError
	}
	return entry
}

// laravelLevel maps Laravel severities (RFC 5424 names) onto the four
// entry levels.
func laravelLevel(severity string) Level {
	switch strings.ToLower(severity) {
	case "emergency", "alert", "critical", "error":
		return LevelError
	case "warning":
		return LevelWarning
	case "notice", "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}
