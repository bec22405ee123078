// Package logging builds the structured logger shared by the launcher.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

const keyError = "error"

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else yields info.
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

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Error wraps err as a log attribute.
func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

// Component tags records with the subsystem that produced them.
func Component(name string) slog.Attr {
	const componentKey = "component"
	return slog.String(componentKey, name)
}
