package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/report"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password...]",
		Short: "Analyze the strength of one or more passwords",
		Long: `Check analyzes each password given as an argument and prints a report.

With no arguments, one password is read from standard input. When standard
input is a terminal, the password is not echoed. Prefer stdin over
arguments: arguments are visible in shell history and process listings.

Examples:
  # Prompt for a password without echo
  passcheck check

  # Read a password from a pipe
  printf '%s\n' "$PASSWORD" | passcheck check --json

  # Use a custom common-password list
  passcheck check -w rockyou.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	addWordlistFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	a := newAnalyzer(cmd.Context(), cfg, logger)

	passwords := args
	if len(passwords) == 0 {
		pw, err := newPromptReader(cmd, cmd.ErrOrStderr()).ReadPassword("Enter password to check: ")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		passwords = []string{pw}
	}

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Checked below on the success path

	writer, err := report.New(output, cfg.Format())
	if err != nil {
		return err
	}

	for i, pw := range passwords {
		if i > 0 && cfg.Format() != report.FormatJSON {
			fmt.Fprintln(output)
		}
		if _, err := writer.Write(a.Analyze(pw)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := closeOutput(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if cfg.ReportFile != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.ReportFile)
	}

	return nil
}
