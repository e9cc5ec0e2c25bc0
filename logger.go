package sift

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sift-specific helpers, giving operations
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to an info-level text handler on stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// LogRebuild logs an index rebuild.
func (l *Logger) LogRebuild(records, positions int) {
	l.Debug("index rebuilt",
		"records", records,
		"positions", positions,
	)
}

// LogQuery logs a parsed query run.
func (l *Logger) LogQuery(line string, results int, err error) {
	if err != nil {
		l.Debug("query failed",
			"query", line,
			"error", err,
		)
	} else {
		l.Debug("query completed",
			"query", line,
			"results", results,
		)
	}
}
