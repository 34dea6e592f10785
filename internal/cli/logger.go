package cli

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

// newLogger returns a text logger on w. verbose forces debug level.
func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	switch level {
	case types.LogLevelDebug:
		lvl = slog.LevelDebug
	case types.LogLevelInfo:
		lvl = slog.LevelInfo
	case types.LogLevelError:
		lvl = slog.LevelError
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
