// Package logging assembles structured slog loggers and formatting helpers used
// across mxfkit commands.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. Loggers write to stderr by default so command output on
// stdout stays machine-readable. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
