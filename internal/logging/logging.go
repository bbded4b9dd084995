// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a text logger on stderr. Verbose enables debug output.
func Setup(verbose bool) {
	slog.SetDefault(New(os.Stderr, verbose))
}

// New builds a text logger writing to w.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: verbose}
	return slog.New(slog.NewTextHandler(w, opts))
}
