// Package logs reads supervisor log files as bounded, filtered,
// paginated windows of parsed entries.
//
// Every operation is a synchronous, stateless unit of work: the file is
// read in full, indexed by original line number, parsed through
// internal/logparse, and filtered. Cursors (beforeLine for backward
// pagination, the tail cursor for polling) are owned by the caller and
// threaded through each call; nothing is cached between calls.
//
// A missing file is success with an empty window, and read failures are
// logged and collapse to the same empty shape. Callers therefore never
// branch on errors, only on result contents.
//
// The whole file is materialized per call. That bounds usefulness to
// files that fit in memory; it is a deliberate trade for stateless
// correctness, not an accident.
package logs
