package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"logdeck/internal/logparse"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiDim    = "\x1b[2m"
)

// renderEntry formats one parsed line for terminal output:
//
//	  42  2024-12-10 08:00:01  ERROR    something broke
//
// Entries without a timestamp render a dash in its place so the columns
// stay aligned.
func renderEntry(entry logparse.Entry, colorize bool) string {
	timestamp := entry.Timestamp
	if timestamp == "" {
		timestamp = "-"
	}
	level := string(entry.Level)

	line := fmt.Sprintf("%6d  %-23s %-8s %s", entry.LineNumber, timestamp, level, entry.Message)
	if !colorize {
		return line
	}
	if color := levelColor(entry.Level); color != "" {
		return color + line + ansiReset
	}
	return line
}

func levelColor(level logparse.Level) string {
	switch level {
	case logparse.LevelError:
		return ansiRed
	case logparse.LevelWarning:
		return ansiYellow
	case logparse.LevelDebug:
		return ansiDim
	case logparse.LevelInfo:
		return ansiCyan
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
