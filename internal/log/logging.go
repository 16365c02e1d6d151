// Package log builds the configured slog.Logger for cmdgen.
//
// Without a log file, records below error go to stdout and errors to stderr,
// so generation summaries can be piped while failures stay visible.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitHandler routes records to one of two handlers around a level boundary.
type splitHandler struct {
	below slog.Handler // levels < at
	at    slog.Level
	above slog.Handler // levels >= at
}

func (s splitHandler) pick(level slog.Level) slog.Handler {
	if level < s.at {
		return s.below
	}
	return s.above
}

func (s splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return splitHandler{below: s.below.WithAttrs(attrs), at: s.at, above: s.above.WithAttrs(attrs)}
}

func (s splitHandler) WithGroup(name string) slog.Handler {
	return splitHandler{below: s.below.WithGroup(name), at: s.at, above: s.above.WithGroup(name)}
}

// teeHandler fans out records to multiple handlers.
type teeHandler struct{ hs []slog.Handler }

func (m teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m teeHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return teeHandler{hs: out}
}

func (m teeHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return teeHandler{hs: out}
}

// SetupLogger builds the cmdgen logger. The returned closer is the opened
// log file, or nil when logging to the console only.
func SetupLogger(level, file string) (*slog.Logger, io.Closer, error) {
	lvl := ParseLevel(level)

	if file == "" {
		h := splitHandler{
			below: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}),
			at:    slog.LevelError,
			above: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
		}
		return slog.New(h), nil, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := teeHandler{hs: []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
		slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}),
	}}
	return slog.New(h), f, nil
}
