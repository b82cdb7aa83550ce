// Package server exposes the supervisor catalog and log reading over
// HTTP.
//
// The API is read-only JSON: supervisor listings, backward-paginated
// log windows, and tail polls. Every response for a missing or
// unreadable log file is an empty window, mirroring the semantics of
// internal/logs, so clients only ever branch on content.
package server
