package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with consistent field names for vectorizer events.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// FromConfig builds a Logger from a level name and a format ("text" or "json").
func FromConfig(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}
}

// ParseLevel maps a level name to an slog.Level. An empty name means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogFit logs the outcome of fitting a vocabulary.
func (l *Logger) LogFit(ctx context.Context, docs, vocabulary int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"documents", docs,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "fit completed",
		"documents", docs,
		"vocabulary", vocabulary,
		"elapsed", elapsed,
	)
}

// LogTransform logs the outcome of transforming a collection.
func (l *Logger) LogTransform(ctx context.Context, docs, width int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "transform failed",
			"documents", docs,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "transform completed",
		"documents", docs,
		"width", width,
		"elapsed", elapsed,
	)
}
