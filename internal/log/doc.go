// Package log provides compact slog-based logging for terminal output.
// The console handler drops timestamps and renders attributes as
// key=value pairs, keeping CLI runs quiet unless --verbose is set.
package log
