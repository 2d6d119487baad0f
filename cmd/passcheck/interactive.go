package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/report"
)

// Menu choices.
const (
	choiceCheck = "1"
	choiceExit  = "2"
)

// NewInteractiveCmd creates the interactive command.
func NewInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Check passwords from an interactive menu",
		Long: `Interactive starts a menu that repeatedly asks for a password and prints
its analysis until you choose to exit. Passwords are not echoed when
standard input is a terminal.

This is also what passcheck runs when no subcommand is given.`,
		Args: cobra.NoArgs,
		RunE: runInteractiveCmd,
	}

	addWordlistFlags(cmd)

	return cmd
}

// runInteractiveCmd executes the interactive menu loop.
func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	a := newAnalyzer(cmd.Context(), cfg, logger)

	out := cmd.OutOrStdout()
	in := newPromptReader(cmd, out)
	writer := report.NewSimpleWriter(out, report.WithHeader(false))

	fmt.Fprintln(out, "🔐 Password Strength Checker")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	for {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, "\nOptions:")
		fmt.Fprintln(out, "1. Check password strength")
		fmt.Fprintln(out, "2. Exit")

		choice, err := in.ReadLine("\nEnter your choice (1-2): ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case choiceCheck:
			pw, err := in.ReadPassword("\nEnter password to check: ")
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}

			fmt.Fprintln(out)
			if _, err := writer.Write(a.Analyze(pw)); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		case choiceExit:
			fmt.Fprintln(out, "Thank you for using Password Strength Checker!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter 1 or 2.")
		}
	}
}
