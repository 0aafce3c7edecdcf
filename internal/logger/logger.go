package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/agent-bridge/internal/config"
)

// Setup configures the global slog logger based on environment.
// Output goes to stderr; stdout carries command results.
func Setup(cfg *config.Config) *slog.Logger {
	logger := New(os.Stderr, cfg)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// New builds a logger writing to w without touching the default.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithCommand adds the subcommand name to logger context
func WithCommand(logger *slog.Logger, command string) *slog.Logger {
	return logger.With("command", command)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
