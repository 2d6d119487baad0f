package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/batch"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/report"
)

// stdinPath selects standard input as the batch source.
const stdinPath = "-"

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze every password in a file",
		Long: `Batch analyzes one password per line and prints a summary report.

Empty lines are skipped; a line holding only spaces or tabs is analyzed
as a password. Results are reported by line number; the
passwords themselves never appear in the output. Use "-" to read from
standard input.

Examples:
  # Analyze a file with 16 concurrent workers
  passcheck batch -b 16 passwords.txt

  # Write a Markdown report with a strength distribution chart
  passcheck batch --markdown -o report.md passwords.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runBatchCmd,
	}

	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")
	addWordlistFlags(cmd)
	addReportFlags(cmd)

	return cmd
}

// runBatchCmd executes the batch command.
func runBatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	ctx := cmd.Context()

	source := args[0]
	in, err := readBatchInput(cmd, source)
	if err != nil {
		return err
	}

	a := newAnalyzer(ctx, cfg, logger)
	processor := batch.NewProcessor(a,
		batch.WithConcurrency(cfg.BatchSize),
		batch.WithLogger(logger),
	)

	results, err := processor.Process(ctx, in.Passwords)
	if err != nil {
		return fmt.Errorf("batch analysis interrupted: %w", err)
	}

	batchReport := model.NewBatchReport(source, in.Entries(results))

	output, closeOutput, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Checked below on the success path

	writer, err := report.New(output, cfg.Format())
	if err != nil {
		return err
	}
	if _, err := writer.WriteBatch(batchReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := closeOutput(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if cfg.ReportFile != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", cfg.ReportFile)
	}

	return nil
}

// readBatchInput reads passwords from path, or stdin when path is "-".
func readBatchInput(cmd *cobra.Command, path string) (*batch.Input, error) {
	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	return batch.ReadInput(r)
}
