package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestNewLoggerLevels verifies the verbose flag's effect on the log level.
func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	t.Run("quiet logger drops debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, false)

		logger.Debug("debug message")
		logger.Info("info message")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}

		logger.Warn("warn message")
		if !strings.Contains(buf.String(), "warn message") {
			t.Errorf("expected warn output, got %q", buf.String())
		}
	})

	t.Run("verbose logger emits debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true)

		logger.Debug("debug message")
		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug output, got %q", buf.String())
		}
	})
}

// TestConsoleHandlerFormat verifies the compact line format.
func TestConsoleHandlerFormat(t *testing.T) {
	t.Parallel()

	t.Run("level prefix and message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Warn("something odd")

		got := buf.String()
		if !strings.HasPrefix(got, "WARN: something odd") {
			t.Errorf("unexpected line %q", got)
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("attributes render as key=value", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Info("saved", "profile", "quarterly", "rows", 12)

		got := buf.String()
		if !strings.Contains(got, "profile=quarterly") {
			t.Errorf("missing string attribute in %q", got)
		}
		if !strings.Contains(got, "rows=12") {
			t.Errorf("missing int attribute in %q", got)
		}
	})

	t.Run("string values with spaces are quoted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Info("saved", "path", "my charts/out.svg")

		if !strings.Contains(buf.String(), `path="my charts/out.svg"`) {
			t.Errorf("expected quoted value in %q", buf.String())
		}
	})

	t.Run("no timestamp in output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Warn("bare")

		if got := buf.String(); got != "WARN: bare\n" {
			t.Errorf("expected bare line, got %q", got)
		}
	})
}

// TestConsoleHandlerWithAttrs verifies accumulated logger attributes.
func TestConsoleHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true).With("component", "store")

	logger.Warn("open failed")
	if !strings.Contains(buf.String(), "component=store") {
		t.Errorf("missing accumulated attribute in %q", buf.String())
	}
}

// TestConsoleHandlerWithGroup verifies dot-separated group prefixes.
func TestConsoleHandlerWithGroup(t *testing.T) {
	t.Parallel()

	t.Run("group prefixes attribute keys", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, true).WithGroup("export")

		logger.Info("done", "format", "svg")
		if !strings.Contains(buf.String(), "export.format=svg") {
			t.Errorf("missing group prefix in %q", buf.String())
		}
	})

	t.Run("inline group expands recursively", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, true).Info("done",
			slog.Group("png", slog.Int("scale", 2)))

		if !strings.Contains(buf.String(), "png.scale=2") {
			t.Errorf("missing expanded group in %q", buf.String())
		}
	})
}
