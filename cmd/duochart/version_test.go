package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests the version resolution order.
func TestGetVersion(t *testing.T) {
	t.Run("ldflags version wins", func(t *testing.T) {
		orig := version
		defer func() { version = orig }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("expected 'v1.2.3', got %q", got)
		}
	})

	t.Run("falls back to build info or devel", func(t *testing.T) {
		orig := version
		defer func() { version = orig }()

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected non-empty version")
		}
	})
}

// TestNewVersionCmd tests the version command output.
func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "duochart version") {
		t.Errorf("expected version line, got %q", got)
	}
	if !strings.Contains(got, "commit:") {
		t.Errorf("expected commit line, got %q", got)
	}
	if !strings.Contains(got, "built:") {
		t.Errorf("expected built line, got %q", got)
	}
}
