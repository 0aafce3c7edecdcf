package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwebster45206/agent-bridge/internal/config"
	"github.com/jwebster45206/agent-bridge/internal/logger"
	"github.com/jwebster45206/agent-bridge/pkg/schema"
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// Exit codes
const (
	exitOK         = 0
	exitViolations = 1
	exitUnreadable = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(exitUnreadable)
	}
	logger.Setup(cfg)

	if err := newValidateCmd(cfg).Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUnreadable)
	}
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newValidateCmd(cfg *config.Config) *cobra.Command {
	var statePath, schemaPath string

	cmd := &cobra.Command{
		Use:           "validate",
		Short:         "Check the game state file against its structural contracts",
		Long:          "Exits 0 when every contract holds, 1 when violations are found, and 2 when the state file cannot be read or is not a JSON object.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			doc, err := state.ReadMapping(statePath)
			if err != nil {
				slog.Debug("State file rejected", "path", statePath, "error", err)
				fmt.Fprintf(out, "FAIL: %v\n", err)
				return &exitError{code: exitUnreadable}
			}

			violations := schema.Validate(doc)

			if schemaPath != "" {
				ext, err := schema.LoadExtension(schemaPath)
				if err != nil {
					fmt.Fprintf(out, "FAIL: unable to load schema: %v\n", err)
					return &exitError{code: exitUnreadable}
				}
				violations = append(violations, ext.Validate(doc)...)
			}

			if len(violations) > 0 {
				fmt.Fprintln(out, "FAIL: schema contract violations")
				for _, v := range violations {
					fmt.Fprintf(out, "  - %s\n", v)
				}
				return &exitError{code: exitViolations}
			}

			fmt.Fprintln(out, "OK: state schema contracts passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", cfg.StatePath, "path to the game state JSON file")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "optional JSON Schema checked after the built-in contracts")
	return cmd
}
