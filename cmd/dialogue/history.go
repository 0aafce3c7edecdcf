package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/pkg/history"
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

func (a *app) newAppendHistoryCmd() *cobra.Command {
	var statePath, historyPath string
	var index int

	cmd := &cobra.Command{
		Use:   "append-history",
		Short: "Record the current NPC reply and the chosen option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := state.LoadMapping(statePath)
			seq := history.Append(state.LoadSequence(historyPath), doc, index)

			if err := state.SaveSequence(historyPath, seq); err != nil {
				return fmt.Errorf("failed to save history: %w", err)
			}
			a.logFor(cmd).Debug("History appended", "path", historyPath, "entries", len(seq), "selected", index)
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", a.cfg.StatePath, "game state JSON file")
	cmd.Flags().StringVar(&historyPath, "history", a.cfg.HistoryPath, "conversation history JSON file")
	cmd.Flags().IntVar(&index, "index", 0, "index of the option chosen")
	_ = cmd.MarkFlagRequired("index")
	return cmd
}

func (a *app) newHistorySummaryCmd() *cobra.Command {
	var historyPath string
	var last int

	cmd := &cobra.Command{
		Use:   "history-summary",
		Short: "Print one line per recorded exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if last < 0 {
				return fmt.Errorf("--last must not be negative, got %d", last)
			}

			seq := state.LoadSequence(historyPath)
			if last > 0 && len(seq) > last {
				seq = seq[len(seq)-last:]
			}

			out := cmd.OutOrStdout()
			for _, line := range history.Summarize(seq) {
				fmt.Fprintln(out, "  "+line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&historyPath, "history", a.cfg.HistoryPath, "conversation history JSON file")
	cmd.Flags().IntVar(&last, "last", 0, "only summarize the last N exchanges (0 = all)")
	return cmd
}
