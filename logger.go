package stocklens

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with stocklens-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDataset adds a dataset field to the logger. Each Session run scopes
// its load logging this way.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(path string, count int, err error) {
	if err != nil {
		l.Error("load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.Info("load completed",
			"path", path,
			"records", count,
		)
	}
}

// LogExport logs a report export.
func (l *Logger) LogExport(name string, rows int, err error) {
	if err != nil {
		l.Error("export failed",
			"artifact", name,
			"error", err,
		)
	} else {
		l.Info("export completed",
			"artifact", name,
			"rows", rows,
		)
	}
}

// LogChart logs a chart rendering. Chart failures are warnings: a run
// keeps going when one visualization cannot be produced.
func (l *Logger) LogChart(path string, err error) {
	if err != nil {
		l.Warn("chart skipped",
			"error", err,
		)
	} else {
		l.Debug("chart written",
			"path", path,
		)
	}
}

// LogPublish logs an artifact publish.
func (l *Logger) LogPublish(target string, count int, err error) {
	if err != nil {
		l.Error("publish failed",
			"target", target,
			"error", err,
		)
	} else {
		l.Info("publish completed",
			"target", target,
			"artifacts", count,
		)
	}
}
