package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jwebster45206/agent-bridge/internal/config"
	"github.com/jwebster45206/agent-bridge/internal/logger"
	"github.com/jwebster45206/agent-bridge/pkg/statusline"
)

// maxStdinBytes caps how much of the hook payload is drained.
const maxStdinBytes = 1 << 20

// main always exits 0. A failing hook would block the agent's tool call.
func main() {
	run(os.Stdin, os.Stdout, time.Now())
}

func run(stdin io.Reader, stdout io.Writer, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Hook suppressed after panic", "panic", r)
		}
	}()

	_, _ = io.Copy(io.Discard, io.LimitReader(stdin, maxStdinBytes))

	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{ProjectDir: os.Getenv("CLAUDE_PROJECT_DIR")}
	}
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = slog.LevelError
	}
	logger.Setup(cfg)

	path, err := statusline.ResolveStatePath(cfg.ProjectDir)
	if err != nil {
		slog.Error("Failed to locate state file", "error", err)
		return
	}

	line, ok := statusline.Build(path, now)
	if !ok {
		return
	}

	if err := statusline.NewHookOutput(line).Write(stdout); err != nil {
		slog.Error("Failed to write hook output", "error", err)
	}
}
