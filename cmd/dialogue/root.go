package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/internal/config"
	"github.com/jwebster45206/agent-bridge/internal/logger"
	"github.com/jwebster45206/agent-bridge/pkg/textfilter"
)

// app is shared by every subcommand.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	filter *textfilter.ProfanityFilter
}

func newRootCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	a := &app{
		cfg:    cfg,
		log:    log,
		filter: textfilter.ForRating(cfg.ContentRating),
	}

	root := &cobra.Command{
		Use:           "dialogue",
		Short:         "Dialogue helpers for the game agent",
		Long:          "Reads the game state dump and conversation history to render assessments and persona prompts, and maintains the history and persona files.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.newAppendHistoryCmd(),
		a.newAssessCmd(),
		a.newMusePromptCmd(),
		a.newHistorySummaryCmd(),
		a.newPersonaSectionCmd(),
		a.newPersonaAppendEvolutionCmd(),
	)
	return root
}

func (a *app) logFor(cmd *cobra.Command) *slog.Logger {
	return logger.WithCommand(a.log, cmd.Name())
}
