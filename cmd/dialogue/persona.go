package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/pkg/persona"
)

func (a *app) newPersonaSectionCmd() *cobra.Command {
	var personaPath, section string
	var render bool

	cmd := &cobra.Command{
		Use:   "persona-section",
		Short: "Print one section of the persona file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(personaPath)
			if err != nil {
				a.logFor(cmd).Debug("Persona unreadable", "path", personaPath, "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Persona file not found")
				return &exitError{code: 1}
			}

			doc := persona.Parse(string(data))
			s, ok := doc.Find(section)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Section \"%s\" not found\n", section)
				return &exitError{code: 1}
			}

			text := doc.Block(s)
			if render {
				text, err = renderMarkdown(text)
				if err != nil {
					return fmt.Errorf("failed to render section: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVar(&personaPath, "persona", a.cfg.PersonaPath, "persona markdown file")
	cmd.Flags().StringVar(&section, "section", "", "section heading, without the leading ##")
	cmd.Flags().BoolVar(&render, "render", false, "render the section as terminal markdown")
	_ = cmd.MarkFlagRequired("section")
	return cmd
}

func (a *app) newPersonaAppendEvolutionCmd() *cobra.Command {
	var personaPath, entry string

	cmd := &cobra.Command{
		Use:   "persona-append-evolution",
		Short: "Add an entry to the persona's Evolution Log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logFor(cmd)

			info, err := os.Stat(personaPath)
			if err != nil {
				log.Warn("Persona unreadable", "path", personaPath, "error", err)
				return &exitError{code: 1}
			}
			data, err := os.ReadFile(personaPath)
			if err != nil {
				log.Warn("Persona unreadable", "path", personaPath, "error", err)
				return &exitError{code: 1}
			}

			updated := persona.AppendEvolution(string(data), entry)
			if err := os.WriteFile(personaPath, []byte(updated), info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write persona: %w", err)
			}
			log.Debug("Evolution entry added", "path", personaPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&personaPath, "persona", a.cfg.PersonaPath, "persona markdown file")
	cmd.Flags().StringVar(&entry, "entry", "", "text of the new entry")
	_ = cmd.MarkFlagRequired("entry")
	return cmd
}

func renderMarkdown(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return out, nil
}
