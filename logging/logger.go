// Package logging provides a tiny abstraction over structured loggers so the
// rest of agentcore can depend on a minimal interface (Logger) while letting
// callers plug in slog, zap or anything else. A NoOpLogger is provided for
// tests and for callers that want logging disabled entirely.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger defines the minimal structured logging interface used throughout
// agentcore. Args are alternating key/value pairs, slog style.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter creates a Logger from an existing *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// Config configures construction of a slog-backed logger.
type Config struct {
	Level     slog.Level
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
}

// NewSlogLogger builds a Logger writing to cfg.Output (stdout if nil) in the
// requested format. JSON is the default.
func NewSlogLogger(cfg Config) Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return NewSlogAdapter(slog.New(handler))
}

// LogTaskExecution records the outcome of one agent task execution with
// uniform attributes. Used by the orchestrator and executor so task logs
// stay queryable across agents.
func LogTaskExecution(l Logger, agent, taskID string, dur time.Duration, success bool, errMsg string) {
	args := []any{
		"agent", agent,
		"task_id", taskID,
		"duration", dur,
		"success", success,
	}
	if errMsg != "" {
		args = append(args, "error", errMsg)
	}
	if success {
		l.Info("task execution completed", args...)
		return
	}
	l.Error("task execution failed", args...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is
// disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
