package logs

import (
	"logdeck/internal/logparse"
)

// TailOptions configures one tail poll.
type TailOptions struct {
	Template logparse.Template
	// LastLine is the caller's tail cursor: the count of non-empty
	// lines it has already consumed. The reader keeps no state between
	// polls; the caller persists the cursor and advances it to the
	// returned TotalLines.
	LastLine int
	// FetchEntries materializes the new entries; otherwise only counts
	// are computed.
	FetchEntries bool
	// Filter applies to fetched entries only. NewCount always counts
	// raw new non-empty lines so the cursor advances past filtered
	// lines too.
	Filter Filter
}

// TailResult reports growth of the file since the caller's cursor.
type TailResult struct {
	NewCount   int              `json:"newCount"`
	TotalLines int              `json:"totalLines"`
	Entries    []logparse.Entry `json:"entries,omitempty"`
}

// Tail recounts the file's non-empty lines and reports how many appeared
// past the cursor, optionally parsing them in chronological order. An
// unchanged file yields NewCount 0 on every call. This is a full
// re-read per poll: correctness over efficiency.
func (r *Reader) Tail(path string, opts TailOptions) TailResult {
	index := r.loadIndex(path)

	result := TailResult{TotalLines: len(index)}
	last := opts.LastLine
	if last < 0 {
		last = 0
	}
	if len(index) > last {
		result.NewCount = len(index) - last
	}

	if !opts.FetchEntries || result.NewCount == 0 {
		return result
	}

	entries := make([]logparse.Entry, 0, result.NewCount)
	for _, line := range index[last:] {
		entry := logparse.ParseLine(opts.Template, line.text, line.number)
		if !opts.Filter.Matches(entry) {
			continue
		}
		entries = append(entries, entry)
	}
	result.Entries = entries
	return result
}
