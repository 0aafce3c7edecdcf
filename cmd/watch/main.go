package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/internal/config"
	"github.com/jwebster45206/agent-bridge/internal/logger"
	"github.com/jwebster45206/agent-bridge/internal/watcher"
	"github.com/jwebster45206/agent-bridge/pkg/textfilter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal; only errors may reach stderr.
	if cfg.LogLevel < slog.LevelError {
		cfg.LogLevel = slog.LevelError
	}
	logger.Setup(cfg)

	if err := newWatchCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newWatchCmd(cfg *config.Config) *cobra.Command {
	var wcfg WatchConfig

	cmd := &cobra.Command{
		Use:          "watch",
		Short:        "Live dashboard of the game state and dialogue assessment",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wcfg.Filter = textfilter.ForRating(cfg.ContentRating)

			sw, err := watcher.New(wcfg.StatePath, watcher.DefaultDebounce)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := sw.Start(ctx); err != nil {
				return err
			}
			defer sw.Stop()

			p := tea.NewProgram(NewWatchUI(&wcfg, sw.Changes()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wcfg.StatePath, "state", cfg.StatePath, "game state JSON file")
	cmd.Flags().StringVar(&wcfg.HistoryPath, "history", cfg.HistoryPath, "conversation history JSON file")
	cmd.Flags().StringVar(&wcfg.ObjectivesPath, "objectives", cfg.ObjectivesPath, "sub-objectives file, one per line")
	return cmd
}
