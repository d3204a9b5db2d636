package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/san-kum/beerslab/internal/reactive"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{" trace ", LevelTrace},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)
	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing")
	}
}

func TestTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("trace", &buf)
	logger.Log(context.Background(), LevelTrace, "step")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE label, got %q", buf.String())
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", &buf)

	r := reactive.NewRegistry()
	v := reactive.NewValue(1.0)
	r.Register("volume", v)
	unlink := Trace(logger, r)

	v.Set(0.75)
	if !strings.Contains(buf.String(), "name=volume value=0.75") {
		t.Errorf("missing trace line: %q", buf.String())
	}

	unlink()
	buf.Reset()
	v.Set(0.5)
	if buf.Len() != 0 {
		t.Errorf("expected no output after unlink, got %q", buf.String())
	}
}

func TestTraceQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	r := reactive.NewRegistry()
	v := reactive.NewValue(1.0)
	r.Register("volume", v)
	Trace(NewLogger("info", &buf), r)

	v.Set(2)
	if buf.Len() != 0 {
		t.Errorf("expected no output at info, got %q", buf.String())
	}
}

func TestFormat(t *testing.T) {
	var nilReading *float64
	reading := 1.5
	if got := format(nilReading); got != "nil" {
		t.Errorf("nil reading formatted as %v", got)
	}
	if got := format(&reading); got != 1.5 {
		t.Errorf("reading formatted as %v", got)
	}
	if got := format(3); got != 3 {
		t.Errorf("int formatted as %v", got)
	}
}
