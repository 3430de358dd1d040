package logger

import (
	"log/slog"
	"os"
)

// SetupPrettySlog returns a human-readable logger for local development.
func SetupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: false,
	}))
}
