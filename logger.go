package bitalloc

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitalloc-specific context.
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

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithCap adds a capacity field to the logger.
func (l *Logger) WithCap(capacity int) *Logger {
	return &Logger{
		Logger: l.Logger.With("capacity", capacity),
	}
}

// LogAlloc logs a single or contiguous allocation.
// Exhaustion is routine for an allocator, so failures are logged at debug level.
func (l *Logger) LogAlloc(key, size int, err error) {
	if err != nil {
		l.Debug("alloc failed",
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("alloc completed",
			"key", key,
			"size", size,
		)
	}
}

// LogFree logs a single or contiguous deallocation.
func (l *Logger) LogFree(key, size int, err error) {
	if err != nil {
		l.Warn("free failed",
			"key", key,
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("free completed",
			"key", key,
			"size", size,
		)
	}
}

// LogInsert logs a range becoming available.
func (l *Logger) LogInsert(start, end int) {
	l.Info("range inserted",
		"start", start,
		"end", end,
	)
}

// LogRemove logs a range being withdrawn.
func (l *Logger) LogRemove(start, end int) {
	l.Info("range removed",
		"start", start,
		"end", end,
	)
}
