package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewText(&buf, slog.LevelDebug))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("generation advanced", "frontier", 9)

	out := buf.String()
	if !strings.Contains(out, "generation advanced") || !strings.Contains(out, "frontier=9") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestNewTextLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}
}
