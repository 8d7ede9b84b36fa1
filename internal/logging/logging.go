// Package logging builds the engine's slog loggers. Logs always go to
// Stderr; Stdout is reserved for result streams (JSON envelopes, query
// output) and must stay clean.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the application logger at the given level.
func New(level slog.Level) *slog.Logger {
	return slog.New(handler(os.Stderr, level))
}

// NewAt writes to an explicit destination. Used by tests and embedders
// that redirect diagnostics.
func NewAt(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(handler(w, level))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config string (debug, info, warn, error) onto a
// slog level. Anything unrecognized falls back to Warn.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return level
}

// handler standardizes attribute keys so call sites can log errors under
// either name and grep for one.
func handler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
}
