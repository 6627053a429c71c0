// Package logging provides a common interface and setup for application-wide logging.
package logging

// file: internal/logging/slog_logger.go

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// slogLogger adapts the standard library's structured logger to the
// application Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug logs a debug-level message with key/value pairs.
func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs an info-level message with key/value pairs.
func (l *slogLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs a warning-level message with key/value pairs.
func (l *slogLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs an error-level message with key/value pairs.
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// WithContext returns the logger unchanged; slog handlers receive the
// context at call sites.
func (l *slogLogger) WithContext(_ context.Context) Logger { return l }

// WithField returns a logger with an additional field attached to every record.
func (l *slogLogger) WithField(key string, value any) Logger {
	return &slogLogger{logger: l.logger.With(key, value)}
}

// ParseLevel converts a level name to a slog.Level, defaulting to Info
// for unrecognized names.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewSlogLogger creates a Logger writing text records to w at the given level.
func NewSlogLogger(w io.Writer, level slog.Level) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &slogLogger{logger: slog.New(handler)}
}

// Setup installs the default application logger.
// Records go to stderr: stdout is reserved for the MCP stdio transport.
func Setup(level string) Logger {
	logger := NewSlogLogger(os.Stderr, ParseLevel(level))
	SetDefaultLogger(logger)
	return logger
}
