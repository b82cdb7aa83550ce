// Package logparse turns raw log lines into structured entries.
//
// Each log source declares a Template that selects a parsing strategy
// (supervisor defaults, Laravel, FastAPI/uvicorn). Parsing never fails:
// a line that matches no structured pattern is preserved verbatim as an
// info-level entry so every input line remains representable in output.
//
// The package is pure and stateless. File access, pagination, and
// filtering live in internal/logs.
package logparse
