package logs

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"logdeck/internal/logparse"
)

// DefaultLimit bounds a window when the caller does not specify one.
const DefaultLimit = 500

// Reader performs windowed reads over a single log file. It holds no
// per-file state; the logger is its only dependency.
type Reader struct {
	logger *slog.Logger
}

// NewReader returns a Reader. A nil logger silences read diagnostics.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Reader{logger: logger}
}

// ForwardOptions configures a forward window read.
type ForwardOptions struct {
	// StartLine is the lowest line number to consider, 1-based among
	// all lines of the file. Zero starts at the beginning.
	StartLine int
	// MaxLines caps the number of matching entries; defaults to
	// DefaultLimit when zero or negative.
	MaxLines int
	Template logparse.Template
	Filter   Filter
}

// BackwardOptions configures a backward (newest-first) window read.
type BackwardOptions struct {
	// Limit caps the number of matching entries; defaults to
	// DefaultLimit when zero or negative.
	Limit int
	// BeforeLine restricts the scan to lines numbered strictly below
	// it. Zero means "from the end of the file". Infinite-scroll
	// callers pass the previous window's OldestLineLoaded here.
	BeforeLine int
	Template   logparse.Template
	Filter     Filter
}

// Window is the result of one windowed read. Entries are ordered by
// ascending line number (chronological: oldest of the window first).
type Window struct {
	Entries    []logparse.Entry `json:"entries"`
	TotalLines int              `json:"totalLines"`
	HasMore    bool             `json:"hasMore"`
	// OldestLineLoaded and NewestLineLoaded are the line-number bounds
	// of the window, 0 when the window is empty. Backward pagination
	// resumes with BeforeLine = OldestLineLoaded.
	OldestLineLoaded int `json:"oldestLineLoaded"`
	NewestLineLoaded int `json:"newestLineLoaded"`
}

// indexedLine pairs a non-empty line with its original line number.
type indexedLine struct {
	number int
	text   string
}

// loadIndex reads the whole file and indexes non-empty lines by their
// 1-based line number. Blank lines advance the numbering but are never
// indexed. Missing files and read failures both yield an empty index;
// the distinction is logged, not surfaced.
func (r *Reader) loadIndex(path string) []indexedLine {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("log file read failed", slog.String("path", path), slog.Any("error", err))
		}
		return nil
	}

	lines := strings.Split(string(data), "\n")
	index := make([]indexedLine, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		index = append(index, indexedLine{number: i + 1, text: line})
	}
	return index
}

// ReadForward scans non-empty lines from StartLine onward, collecting
// up to MaxLines entries that pass the filter. HasMore reports whether
// unfiltered candidates remain past the last consumed line.
func (r *Reader) ReadForward(path string, opts ForwardOptions) Window {
	limit := opts.MaxLines
	if limit <= 0 {
		limit = DefaultLimit
	}

	index := r.loadIndex(path)
	window := Window{Entries: []logparse.Entry{}, TotalLines: len(index)}

	for _, line := range index {
		if line.number < opts.StartLine {
			continue
		}
		if len(window.Entries) == limit {
			window.HasMore = true
			break
		}
		entry := logparse.ParseLine(opts.Template, line.text, line.number)
		if !opts.Filter.Matches(entry) {
			continue
		}
		window.Entries = append(window.Entries, entry)
	}

	setWindowBounds(&window)
	return window
}

// ReadBackward collects up to Limit matching entries walking the file
// newest-first, then returns them in chronological order. HasMore is
// true iff the oldest loaded line is not the first indexed line of the
// file, i.e. older history remains for another page.
func (r *Reader) ReadBackward(path string, opts BackwardOptions) Window {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	index := r.loadIndex(path)
	window := Window{Entries: []logparse.Entry{}, TotalLines: len(index)}

	hi := len(index)
	if opts.BeforeLine > 0 {
		hi = sort.Search(len(index), func(i int) bool {
			return index[i].number >= opts.BeforeLine
		})
	}

	collected := make([]logparse.Entry, 0, limit)
	for i := hi - 1; i >= 0 && len(collected) < limit; i-- {
		entry := logparse.ParseLine(opts.Template, index[i].text, index[i].number)
		if !opts.Filter.Matches(entry) {
			continue
		}
		collected = append(collected, entry)
	}

	// collected is newest-first; reverse into chronological order.
	for left, right := 0, len(collected)-1; left < right; left, right = left+1, right-1 {
		collected[left], collected[right] = collected[right], collected[left]
	}
	window.Entries = collected

	setWindowBounds(&window)
	if len(collected) > 0 && len(index) > 0 {
		window.HasMore = window.OldestLineLoaded != index[0].number
	}
	return window
}

func setWindowBounds(window *Window) {
	if len(window.Entries) == 0 {
		return
	}
	window.OldestLineLoaded = window.Entries[0].LineNumber
	window.NewestLineLoaded = window.Entries[len(window.Entries)-1].LineNumber
}
