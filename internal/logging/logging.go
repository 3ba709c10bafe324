// Package logging configures the process-wide slog logger. Records are
// written as JSON to a size-rotated file so that the console stays reserved
// for command output.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/ppm/internal/apperr"
)

// Log levels accepted in the config file.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

var errUnknownLevel = &apperr.Error{
	Message: "unknown log level '%s' (must be debug, info, warn or error)",
}

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errUnknownLevel

// ParseLevel converts a config log level to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errUnknownLevel.Fmt(level)
	}
}

// NewRotatingWriter returns a writer that appends to path and rotates the
// file once it grows past a few megabytes.
func NewRotatingWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}

// Setup installs a rotating file logger as the slog default. The returned
// closer flushes and closes the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := NewRotatingWriter(path)

	slog.SetDefault(New(w, lvl))

	return w, nil
}
