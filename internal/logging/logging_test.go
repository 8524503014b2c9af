package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	Set(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger must be disabled")
	}
}

func TestSetInstallsLogger(t *testing.T) {
	var buf bytes.Buffer
	Set(NewText(&buf, true))
	defer Set(nil)

	Logger().Debug("frame", "n", 3)
	if !strings.Contains(buf.String(), "frame") || !strings.Contains(buf.String(), "n=3") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestNewTextHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, false)
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output leaked at info level: %q", buf.String())
	}
}
