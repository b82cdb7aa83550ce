package logparse

// Level classifies the severity of a log entry.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelDebug   Level = "debug"
)

// Entry is one parsed log line.
//
// LineNumber is the 1-based position among all lines of the source
// file, blank lines included. It is stable for a given file state and
// serves as the pagination and tail cursor key; it is never an array
// index.
type Entry struct {
	Timestamp  string `json:"timestamp,omitempty"`
	Level      Level  `json:"level"`
	Message    string `json:"message"`
	LineNumber int    `json:"lineNumber"`
	Raw        string `json:"raw"`
}
