package main

import (
	"io"
	"log/slog"
	"os"
)

var theLog = newLog(os.Stderr, slog.LevelInfo)

// newLog returns a text logger without timestamps. INFO records carry no
// level attribute.
func newLog(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if a.Value.String() == slog.LevelInfo.String() {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
