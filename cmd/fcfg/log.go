package main

import (
	"log/slog"
	"os"
)

var (
	theLevel = new(slog.LevelVar)
	theLog   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: theLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
)

func init() {
	theLevel.Set(slog.LevelWarn)
}
