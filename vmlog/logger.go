// Package vmlog builds the structured logger the rest of this module
// takes as a dependency, generalizing the teacher's
// utils.InicializarLogger (which built a pair of package-level globals)
// into a constructor returning an ordinary *slog.Logger tagged with the
// caller's component name.
package vmlog

import (
	"log/slog"
	"os"
)

// New builds a text-handler slog.Logger at the given level, tagged with
// component. An unrecognized or empty level falls back to info, matching
// the teacher's switch default.
func New(level string, component string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("component", component)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
