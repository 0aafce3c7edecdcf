package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/pkg/objectives"
	"github.com/jwebster45206/agent-bridge/pkg/persona"
	"github.com/jwebster45206/agent-bridge/pkg/prompts"
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

var clipboardWriteAll = clipboard.WriteAll

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFA500"))

func (a *app) newAssessCmd() *cobra.Command {
	var statePath, historyPath, objectivesPath string
	var width int
	var color bool

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Print a structured assessment of the current dialogue turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 {
				return fmt.Errorf("--width must not be negative, got %d", width)
			}

			b := prompts.New().
				WithState(state.LoadMapping(statePath)).
				WithHistory(state.LoadSequence(historyPath)).
				WithObjectives(objectives.Load(objectivesPath)).
				WithFilter(a.filter)
			if color {
				b.WithHeaderStyle(func(s string) string { return headerStyle.Render(s) })
			}

			text := b.BuildAssessment()
			if width > 0 {
				text = wordwrap.String(text, width)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", a.cfg.StatePath, "game state JSON file")
	cmd.Flags().StringVar(&historyPath, "history", a.cfg.HistoryPath, "conversation history JSON file")
	cmd.Flags().StringVar(&objectivesPath, "objectives", a.cfg.ObjectivesPath, "sub-objectives file, one per line")
	cmd.Flags().IntVar(&width, "width", 0, "wrap output at this many columns (0 = off)")
	cmd.Flags().BoolVar(&color, "color", false, "style section headers for a terminal")
	return cmd
}

func (a *app) newMusePromptCmd() *cobra.Command {
	var statePath, historyPath, personaPath, objectivesPath string
	var copyPrompt bool

	cmd := &cobra.Command{
		Use:   "muse-prompt",
		Short: "Print the persona's inner-thought prompt for the current turn",
		Long:  "Prints nothing when the NPC has neither a reply nor options.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logFor(cmd)
			name, voice := persona.LoadNameAndVoice(personaPath)

			prompt, ok := prompts.New().
				WithState(state.LoadMapping(statePath)).
				WithHistory(state.LoadSequence(historyPath)).
				WithPersona(name, voice).
				WithObjectives(objectives.Load(objectivesPath)).
				WithFilter(a.filter).
				BuildMusePrompt()
			if !ok {
				log.Debug("No dialogue to react to")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(prompt, "\n"))

			if copyPrompt {
				if err := clipboardWriteAll(prompt); err != nil {
					log.Warn("Failed to copy prompt to clipboard", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", a.cfg.StatePath, "game state JSON file")
	cmd.Flags().StringVar(&historyPath, "history", a.cfg.HistoryPath, "conversation history JSON file")
	cmd.Flags().StringVar(&personaPath, "persona", a.cfg.PersonaPath, "persona markdown file")
	cmd.Flags().StringVar(&objectivesPath, "objectives", a.cfg.ObjectivesPath, "sub-objectives file, one per line")
	cmd.Flags().BoolVar(&copyPrompt, "copy", false, "also copy the prompt to the clipboard")
	return cmd
}
