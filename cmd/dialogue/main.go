package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jwebster45206/agent-bridge/internal/config"
	"github.com/jwebster45206/agent-bridge/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg)
	slog.Debug("Starting dialogue helper", "environment", cfg.Environment)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitError carries a process exit code. Its message, if any, has already
// been printed by the command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode prints errors that have not been reported yet and picks the
// process exit status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
