// Package logging configures the process-wide slog logger.
//
// Two output formats are supported: "console", a human-oriented
// key=value line format, and "json" for machine consumption. The
// format, level, and optional log file come from the application
// config.
package logging
