// Package log provides category-tagged structured logging for formatfield.
//
// Every diagnostic in the codebase flows through this package so that a
// single --verbose flag (or SetLevel call) controls visibility everywhere.
// Categories let callers filter output by subsystem when debugging.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// Category identifies the subsystem emitting a log entry.
type Category string

const (
	// CatConfig covers configuration parsing and validation diagnostics.
	CatConfig Category = "config"
	// CatFormat covers the transformation pipeline and rule execution.
	CatFormat Category = "format"
	// CatEditor covers the edit controller and history.
	CatEditor Category = "editor"
	// CatUI covers the terminal host components.
	CatUI Category = "ui"
)

var (
	mu     sync.RWMutex
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.WarnLevel,
	})
)

// SetLevel adjusts the minimum level that will be emitted.
func SetLevel(level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// SetVerbose switches between debug and the default warn level.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(log.DebugLevel)
	} else {
		SetLevel(log.WarnLevel)
	}
}

// SetOutput redirects log output, primarily for tests and for keeping
// stderr clean while a TUI program owns the terminal.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Debug logs a debug-level message tagged with cat.
func Debug(cat Category, msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Debug(msg, append([]any{"cat", string(cat)}, keyvals...)...)
}

// Info logs an info-level message tagged with cat.
func Info(cat Category, msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Info(msg, append([]any{"cat", string(cat)}, keyvals...)...)
}

// Warn logs a warn-level message tagged with cat.
func Warn(cat Category, msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Warn(msg, append([]any{"cat", string(cat)}, keyvals...)...)
}

// Error logs an error-level message tagged with cat.
func Error(cat Category, msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	logger.Error(msg, append([]any{"cat", string(cat)}, keyvals...)...)
}
