// Package logging provides the process-wide structured logger used by
// every other package in this module.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global structured logger instance.
var Logger *slog.Logger

// Init opens the log file in the OS temp directory and installs a
// structured text logger that writes to it.
func Init() {
	logPath := filepath.Join(os.TempDir(), "shadersense-log.txt")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		panic("couldn't open log file")
	}

	Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
