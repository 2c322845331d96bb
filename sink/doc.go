// Package sink provides the destinations a dispatch core writes to.
//
// A Sink receives each accepted record together with its rendered header
// and must release its resources on Close. Close is idempotent; Write after
// Close returns ErrClosed without touching the destination.
//
// Built-in sinks:
//   - Console writes text lines to stdout, optionally coloured per level
//   - Debug writes text lines to the debug stream (stderr by default)
//   - File writes text (.log) or JSON (.json) lines to a file it owns
//
// Every built-in sink serializes its own writes, so a single sink can be
// shared safely. Sinks return write errors instead of panicking; the
// dispatch core counts them as dropped records.
package sink
