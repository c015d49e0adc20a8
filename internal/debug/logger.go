// Package debug provides debug logging functionality using log/slog
package debug

import (
	"log/slog"
	"os"
	"sync"
)

var (
	// logger is the global debug logger instance
	logger *slog.Logger
	// enabled indicates if debug logging is enabled
	enabled bool
	// mu protects the logger and enabled flag
	mu sync.RWMutex
)

func init() {
	Init(false)
}

// Init initializes the debug logger
// If enable is true, debug logs will be written to os.Stderr
// If enable is false, debug logs will be silently discarded
func Init(enable bool) {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable

	level := slog.LevelDebug
	if !enable {
		// Set to a level higher than any actual level
		level = slog.LevelError + 1
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
}

// Enabled returns whether debug logging is enabled
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Error(msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	return l.With(args...)
}
