package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON logger on stdout as the process-wide default. main
// swaps in a MultiHandler once the database handler is available.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
