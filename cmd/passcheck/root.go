package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passcheck.
// Without a subcommand it starts the interactive menu.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Analyze password strength",
		Long: `passcheck analyzes password strength and suggests improvements.

It checks length, character variety, common passwords, sequential
characters, repeated characters and keyboard patterns, and produces a
score from 0 to 100 with a strength label.

Run without a subcommand to start the interactive menu.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runInteractiveCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")
	addWordlistFlags(cmd)

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewInteractiveCmd())
	cmd.AddCommand(NewWordlistCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
