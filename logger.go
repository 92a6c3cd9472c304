package partlist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with list-specific helpers.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

func (l *Logger) logOp(op string, index int, key any, err error) {
	if err != nil {
		l.Warn(op+" failed",
			"index", index,
			"key", key,
			"error", err,
		)
	} else {
		l.Debug(op+" completed",
			"index", index,
			"key", key,
		)
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(index int, key any, err error) {
	l.logOp("insert", index, key, err)
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(index int, key any, err error) {
	l.logOp("remove", index, key, err)
}

// LogSet logs a replace operation.
func (l *Logger) LogSet(index int, key any, err error) {
	l.logOp("set", index, key, err)
}

// LogBulkRemove logs a bulk removal.
func (l *Logger) LogBulkRemove(removed int, err error) {
	if err != nil {
		l.Warn("bulk remove failed",
			"error", err,
		)
	} else {
		l.Debug("bulk remove completed",
			"removed", removed,
		)
	}
}

// LogCascade logs the number of index entries an index cascade touched and
// the number of partitions whose indexes moved.
func (l *Logger) LogCascade(index, touched, partitions int) {
	l.Debug("index cascade",
		"index", index,
		"touched", touched,
		"partitions", partitions,
	)
}

// LogPartition logs partition lifecycle events ("created", "reclaimed").
func (l *Logger) LogPartition(event string, key any) {
	l.Debug("partition "+event,
		"key", key,
	)
}
