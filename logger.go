package lexgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with lexgo-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDocID adds a document ID field to the logger.
func (l *Logger) WithDocID(id uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("doc_id", id),
	}
}

// WithQuery adds a query field to the logger.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", query),
	}
}

// LogIndex logs an index operation.
func (l *Logger) LogIndex(ctx context.Context, docID uint64, docLength int, err error) {
	log := l.WithDocID(docID)
	if err != nil {
		log.ErrorContext(ctx, "index failed",
			"error", err,
		)
	} else {
		log.DebugContext(ctx, "index completed",
			"doc_length", docLength,
		)
	}
}

// LogBatchIndex logs a batch index operation.
func (l *Logger) LogBatchIndex(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch index failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch index completed",
			"count", count,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, query string, limit, hits int, took time.Duration, err error) {
	log := l.WithQuery(query)
	if err != nil {
		log.ErrorContext(ctx, "search failed",
			"limit", limit,
			"error", err,
		)
	} else {
		log.DebugContext(ctx, "search completed",
			"limit", limit,
			"hits", hits,
			"took", took,
		)
	}
}
