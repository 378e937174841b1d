package commands

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger for diagnostics. Rendered output goes to
// stdout; logs go to w, normally stderr.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
