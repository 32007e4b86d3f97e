package core

import (
	"log/slog"
	"os"
	"strings"
)

// Logger provides a structured logging interface for the engine and agents.
type Logger interface {
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	Debug(msg string, fields ...any)
}

// slogLogger wraps the standard library slog.Logger.
type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a new JSON logger on stderr with the specified level.
func NewLogger(level string) Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel,
	})
	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Info(msg string, fields ...any)  { l.logger.Info(msg, fields...) }
func (l *slogLogger) Warn(msg string, fields ...any)  { l.logger.Warn(msg, fields...) }
func (l *slogLogger) Error(msg string, fields ...any) { l.logger.Error(msg, fields...) }
func (l *slogLogger) Debug(msg string, fields ...any) { l.logger.Debug(msg, fields...) }

// NopLogger discards all log output. Used in tests.
type NopLogger struct{}

func (NopLogger) Info(msg string, fields ...any)  {}
func (NopLogger) Warn(msg string, fields ...any)  {}
func (NopLogger) Error(msg string, fields ...any) {}
func (NopLogger) Debug(msg string, fields ...any) {}
