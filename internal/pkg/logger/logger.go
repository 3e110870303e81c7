// Package logger provides the process-wide structured logger. Commands
// log operational problems (unreadable files, bad configuration) here;
// the algorithm packages stay log-free and report through errors.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once

	mu       sync.Mutex
	disabled bool
)

// Initialize sets up the structured logger. Log records go to stderr as
// JSON, so command output on stdout stays machine-readable. The level
// comes from PASTIME_LOG_LEVEL (debug, info, warn, error), defaulting
// to info.
func Initialize() {
	once.Do(func() {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: levelFromEnv(),
		})
		defaultLogger = slog.New(handler)
	})
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("PASTIME_LOG_LEVEL")) {
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

// Get returns the default structured logger.
func Get() *slog.Logger {
	Initialize()
	mu.Lock()
	defer mu.Unlock()
	if disabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Disable drops all log output until Enable is called. The interactive
// display calls this so records cannot tear the screen.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	disabled = true
}

// Enable restores log output after Disable.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	disabled = false
}

// Info logs an info level message.
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning level message.
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error level message.
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// Debug logs a debug level message.
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}
