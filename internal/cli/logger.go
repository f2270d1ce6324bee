package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger writing to w at the named level. Unknown
// names fall back to warn; Config.Validate rejects them before this point.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelWarn
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
