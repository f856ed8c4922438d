package logging

import (
	"io"
	"log/slog"
)

// Verbose reports whether debug logging is enabled.
var Verbose bool

var logger = slog.Default()

// Setup configures the debug logging channel.
// When verbose is true, debug-level records are emitted.
// When jsonOutput is true, records are written as JSON.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
}

// Debug logs a debug-level record. Only emitted in verbose mode.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info-level record.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning-level record.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
