package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nxadm/tail"

	"logdeck/internal/logparse"
)

// FollowOptions configures live streaming of a log file.
type FollowOptions struct {
	Template logparse.Template
	Filter   Filter
	// FromStart replays the whole file before following; the default
	// starts at the current end.
	FromStart bool
}

// Follow streams appended lines until ctx is cancelled, invoking fn for
// every non-empty line that passes the filter. Unlike the polling
// operations this keeps the file open and survives rotation, which
// makes it a CLI convenience rather than part of the stateless core.
func (r *Reader) Follow(ctx context.Context, path string, opts FollowOptions, fn func(logparse.Entry) error) error {
	lineOffset := 0
	cfg := tail.Config{
		Follow:        true,
		ReOpen:        true,
		MustExist:     false,
		CompleteLines: true,
		Logger:        tail.DiscardingLogger,
	}
	if !opts.FromStart {
		// Line numbers keep counting from the current end of file.
		lineOffset = countLines(path)
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("follow log file: %w", err)
	}
	defer func() {
		_ = t.Stop()
		t.Cleanup()
	}()

	lineNumber := lineOffset
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				r.logger.Warn("follow read failed", "path", path, "error", line.Err)
				continue
			}
			lineNumber++
			text := strings.TrimSuffix(line.Text, "\r")
			if strings.TrimSpace(text) == "" {
				continue
			}
			entry := logparse.ParseLine(opts.Template, text, lineNumber)
			if !opts.Filter.Matches(entry) {
				continue
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
	}
}

// countLines returns the number of physical lines currently in the
// file, blanks included, so followed entries continue the numbering.
func countLines(path string) int {
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return 0
	}
	count := strings.Count(string(data), "\n")
	if data[len(data)-1] != '\n' {
		count++
	}
	return count
}
