package logparse

import (
	"encoding/json"
	"regexp"
	"strings"
)

// INFO:     127.0.0.1:52340 - "GET /health HTTP/1.1" 200 OK
var uvicornLinePattern = regexp.MustCompile(`(?i)^(info|warning|error|debug|critical):\s+(.*)$`)

// 2024-12-10 08:00:01,234 - uvicorn.error - WARNING - shutting down
var pythonLoggingPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}:\d{2}(?:[.,]\d+)?)\s+-\s+(\S+)\s+-\s+([A-Za-z]+)\s+-\s+(.*)$`)

func parseFastAPI(raw string, lineNumber int) Entry {
	entry := Entry{
		Level:      LevelInfo,
		Message:    raw,
		LineNumber: lineNumber,
		Raw:        raw,
	}

	if m := uvicornLinePattern.FindStringSubmatch(raw); m != nil {
		entry.Level = pythonLevel(m[1])
		entry.Message = strings.TrimSpace(m[2])
		return entry
	}

	if m := pythonLoggingPattern.FindStringSubmatch(raw); m != nil {
		entry.Timestamp = m[1]
		entry.Level = pythonLevel(m[3])
		entry.Message = strings.TrimSpace(m[4])
		return entry
	}

	if parsed, ok := parseJSONLine(raw); ok {
		parsed.LineNumber = lineNumber
		parsed.Raw = raw
		return parsed
	}

	// Fallback substring heuristic for anything structlog, tracebacks,
	// or print statements produced.
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "exception"), strings.Contains(lower, "traceback"):
		entry.Level = LevelError
	case strings.Contains(lower, "warning"):
		entry.Level = LevelWarning
	case strings.Contains(lower, "debug"):
		entry.Level = LevelDebug
	}
	return entry
}

// parseJSONLine handles JSON-formatted log lines (python-json-logger,
// structlog JSON renderer). Malformed JSON reports ok=false so the
// caller falls through to the next strategy.
func parseJSONLine(raw string) (Entry, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(trimmed), &fields); err != nil {
		return Entry{}, false
	}

	entry := Entry{Level: LevelInfo, Message: raw}
	if ts, ok := firstString(fields, "timestamp", "time", "asctime"); ok {
		entry.Timestamp = ts
	}
	if msg, ok := firstString(fields, "message", "msg", "event"); ok {
		entry.Message = msg
	}
	if level, ok := firstString(fields, "level", "levelname"); ok {
		entry.Level = pythonLevel(level)
	}
	return entry, true
}

func firstString(fields map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := fields[key].(string); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

func pythonLevel(name string) Level {
	switch strings.ToLower(name) {
	case "fatal", "critical", "error":
		return LevelError
	case "warn", "warning":
		return LevelWarning
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}
