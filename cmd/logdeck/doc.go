// Package main hosts the logdeck CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// catalog operations, windowed log reads, tail polls, and the embedded
// HTTP API server. It centralizes configuration resolution and catalog
// access so subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
