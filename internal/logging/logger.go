// Package logging builds the harness logger. Diagnostics go to stderr so
// they never mix with a script's stdout sequence; by default the logger
// is silent, since the demos' own stderr lines are part of their output
// contract.
package logging

import (
	"io"
	"log/slog"
)

// New returns a debug-level text logger on w when verbose is set, and a
// no-op logger otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return NewNop()
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
