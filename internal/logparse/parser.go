package logparse

// ParseLine parses one raw line using the selected template. It never
// fails: when no structured pattern matches, the entry carries the full
// line as its message at info level with no timestamp.
func ParseLine(template Template, raw string, lineNumber int) Entry {
	switch template {
	case TemplateLaravel:
		return parseLaravel(raw, lineNumber)
	case TemplateFastAPI:
		return parseFastAPI(raw, lineNumber)
	default:
		return parseDefault(raw, lineNumber)
	}
}
