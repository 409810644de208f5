// Package logging wraps log/slog with optional file output and rotation.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger settings.
type Config struct {
	// FilePath is the log file (empty = logging disabled)
	FilePath string
	// Level is the minimum level written
	Level slog.Level
	// JSON selects the JSON handler instead of text
	JSON bool
	// MaxSizeMB is the size at which the file is rotated
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept
	MaxBackups int
}

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
	current = discard
)

// Init configures the package logger. An empty FilePath disables logging.
func Init(cfg Config) {
	if cfg.FilePath == "" {
		current = discard
		return
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
	current = slog.New(newHandler(writer, cfg))
}

// InitWriter sends log output to w. Used by tests.
func InitWriter(w io.Writer, cfg Config) {
	current = slog.New(newHandler(w, cfg))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Get returns the package logger. It never returns nil.
func Get() *slog.Logger {
	return current
}

// Enabled reports whether logging goes anywhere.
func Enabled() bool {
	return current != discard
}

func Debug(msg string, args ...any) { current.Debug(msg, args...) }
func Info(msg string, args ...any)  { current.Info(msg, args...) }
func Warn(msg string, args ...any)  { current.Warn(msg, args...) }
func Error(msg string, args ...any) { current.Error(msg, args...) }

// ParseLevel converts a config string to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
