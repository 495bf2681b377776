package logging

import (
	"log/slog"
	"strings"
	"testing"
)

func TestHandle_Format(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(NewHumanReadableHandler(&buf, slog.LevelInfo))

	logger.Info("Operation completed", "op", "generate_random_string", "len", 16)

	got := buf.String()
	if !strings.Contains(got, "Operation completed") {
		t.Errorf("output %q missing message", got)
	}
	if !strings.Contains(got, "op=generate_random_string") {
		t.Errorf("output %q missing op attribute", got)
	}
	if !strings.Contains(got, "len=16") {
		t.Errorf("output %q missing len attribute", got)
	}
}

func TestHandle_QuotesValuesWithSpaces(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(NewHumanReadableHandler(&buf, slog.LevelInfo))

	logger.Warn("Operation failed", "error", "invalid sample count: count 0 for 3 items")

	got := buf.String()
	if !strings.Contains(got, `error="invalid sample count: count 0 for 3 items"`) {
		t.Errorf("output %q should quote values containing spaces", got)
	}
}

func TestHandle_LevelFiltering(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(NewHumanReadableHandler(&buf, slog.LevelWarn))

	logger.Info("should be dropped")
	logger.Warn("should be written")

	got := buf.String()
	if strings.Contains(got, "should be dropped") {
		t.Errorf("output %q contains record below the handler level", got)
	}
	if !strings.Contains(got, "should be written") {
		t.Errorf("output %q missing record at the handler level", got)
	}
}

func TestWithAttrs(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(NewHumanReadableHandler(&buf, slog.LevelInfo)).With("component", "service")

	logger.Info("Operation completed")

	if !strings.Contains(buf.String(), "component=service") {
		t.Errorf("output %q missing attribute added with With", buf.String())
	}
}
