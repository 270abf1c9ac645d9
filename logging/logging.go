package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds configuration for the diagnostics logger.
type Config struct {
	// Level is the minimum level to emit; defaults to INFO if invalid or empty.
	Level string
	// Component is attached to every record as a "component" attribute when set.
	Component string
}

// NewLogger creates a new slog.Logger with a JSON handler writing to w.
// A nil writer falls back to stderr.
func NewLogger(config Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	})

	logger := slog.New(handler)
	if config.Component != "" {
		logger = logger.With(slog.String("component", config.Component))
	}

	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
