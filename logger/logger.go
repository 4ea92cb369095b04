package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is a global, exported logger shared by every package in the service.
var Log *slog.Logger

// init runs automatically when the 'logger' package is imported.
func init() {
	logFile := os.Getenv("FANMEET_LOG_FILE")
	if logFile == "" {
		logFile = "service.log"
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		// We can't use our logger here, so we'll panic.
		panic("Failed to open log file: " + err.Error())
	}

	// Write to both the console and the log file.
	writer := io.MultiWriter(os.Stdout, file)

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Log = slog.New(handler)
}
