// Package logging provides custom logging handlers.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// HumanReadableHandler is a slog handler that writes single-line,
// human-readable records: the level and message first, remaining
// attributes as key=value pairs in parentheses.
type HumanReadableHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
}

// NewHumanReadableHandler creates a new human-readable log handler
// writing to w at the given minimum level. A nil level defaults to info.
func NewHumanReadableHandler(w io.Writer, level slog.Leveler) *HumanReadableHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &HumanReadableHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *HumanReadableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the log record.
func (h *HumanReadableHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})

	var buf strings.Builder
	buf.WriteString(r.Level.String())
	buf.WriteString(" ")
	buf.WriteString(r.Message)

	if len(attrs) > 0 {
		buf.WriteString(" (")
		for i, a := range attrs {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(a.Key)
			buf.WriteString("=")
			writeValue(&buf, a.Value)
		}
		buf.WriteString(")")
	}
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.writer, buf.String())
	return err
}

// writeValue writes a formatted attribute value, quoting strings that
// contain spaces or equals signs.
func writeValue(buf *strings.Builder, v slog.Value) {
	s := v.String()
	if strings.ContainsAny(s, " =") {
		fmt.Fprintf(buf, "%q", s)
		return
	}
	buf.WriteString(s)
}

// WithAttrs returns a new handler that includes the given attributes in
// every record.
func (h *HumanReadableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &HumanReadableHandler{
		mu:     h.mu,
		writer: h.writer,
		level:  h.level,
		attrs:  combined,
	}
}

// WithGroup returns the handler unchanged; groups are not used here.
func (h *HumanReadableHandler) WithGroup(name string) slog.Handler {
	return h
}
