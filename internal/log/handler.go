package log

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the longest string attribute kept intact.
const DefaultMaxValueLen = 120

// truncatedSuffix marks a shortened value.
const truncatedSuffix = "...(truncated)"

// CompactHandler wraps an slog.Handler and shortens string attribute values
// longer than its limit before passing records on.
type CompactHandler struct {
	// handler is the underlying slog handler that receives compacted records.
	handler slog.Handler

	// maxLen is the longest value length, in runes, left untouched.
	maxLen int
}

// NewCompactHandler creates a CompactHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used. A non-positive maxLen
// selects DefaultMaxValueLen.
func NewCompactHandler(handler slog.Handler, maxLen int) *CompactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &CompactHandler{handler: handler, maxLen: maxLen}
}

// Enabled delegates to the underlying handler.
func (h *CompactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle compacts the record's attributes and passes it on.
func (h *CompactHandler) Handle(ctx context.Context, r slog.Record) error {
	compacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		compacted.AddAttrs(h.compactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, compacted)
}

// WithAttrs returns a new handler with the given attributes compacted and added.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = h.compactAttr(a)
	}
	return &CompactHandler{handler: h.handler.WithAttrs(out), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

func (h *CompactHandler) compactAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			out[i] = h.compactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindString:
		return slog.String(a.Key, truncate(a.Value.String(), h.maxLen))
	default:
		return a
	}
}

// truncate cuts s to maxLen runes.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + truncatedSuffix
}

// level maps the verbose flag to a log level.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text logger writing to w.
// If verbose is true the level is Debug; otherwise Warn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewCompactHandler(slog.NewTextHandler(w, opts), DefaultMaxValueLen))
}

// NewJSONLogger creates a logger writing JSON lines to w.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewCompactHandler(slog.NewJSONHandler(w, opts), DefaultMaxValueLen))
}
