package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/analyzer"
	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/database"
	"github.com/nao1215/passcheck/internal/log"
	"github.com/nao1215/passcheck/internal/wordlist"
)

// addWordlistFlags registers the flags that choose the common-password source.
func addWordlistFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("wordlist", "w", "",
		"Common-password file, one word per line (overrides the database)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .passcheck in current or home directory)")
	cmd.Flags().String("db-dir", "",
		"Word-list database directory (default: XDG data directory)")
	cmd.Flags().Bool("no-db", false,
		"Do not load common passwords from the word-list database")
}

// addReportFlags registers the report format and destination flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a redacting logger that writes to the command's stderr.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	if jsonLogs, err := cmd.Flags().GetBool("log-json"); err == nil && jsonLogs {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// buildConfig creates a Config from the flags defined on cmd and merges
// the configuration file. Flags a command does not define keep defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error

	if flags.Lookup("wordlist") != nil {
		if cfg.WordlistPath, err = flags.GetString("wordlist"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("config") != nil {
		if cfg.ConfigFilePath, err = flags.GetString("config"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("db-dir") != nil {
		dbDir, err := flags.GetString("db-dir")
		if err != nil {
			return nil, err
		}
		if dbDir != "" {
			cfg.DBDir = dbDir
		}
	}
	if flags.Lookup("no-db") != nil {
		noDB, err := flags.GetBool("no-db")
		if err != nil {
			return nil, err
		}
		cfg.UseDatabase = !noDB
	}
	if flags.Lookup("batch") != nil {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("json") != nil {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("markdown") != nil {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Lookup("output") != nil {
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}

	// An explicitly requested config file must exist; the default
	// locations are optional.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" && cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Merge(file, flags.Changed); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// newAnalyzer builds an Analyzer whose common-password list comes from the
// first available source: the --wordlist file, the database, or the
// built-in defaults. Load failures fall back to the defaults.
func newAnalyzer(ctx context.Context, cfg *config.Config, logger *slog.Logger) *analyzer.Analyzer {
	var src wordlist.Source

	switch {
	case cfg.WordlistPath != "":
		src = wordlist.NewFileSource(cfg.WordlistPath)
	case cfg.UseDatabase && database.Exists(cfg.DBDir):
		db, err := database.Open(cfg.DBDir, database.ReadOnlyOptions())
		if err != nil {
			logger.Warn("failed to open word-list database, using built-in list",
				"dir", cfg.DBDir,
				"error", err,
			)
			break
		}
		defer db.Close()

		// A database with every list deleted is not an error.
		if n, err := db.CountWords(ctx); err == nil && n == 0 {
			logger.Debug("word-list database is empty", "dir", cfg.DBDir)
			break
		}
		src = db
	}

	set := wordlist.Load(ctx, src, logger)
	a := analyzer.New(analyzer.WithCommonPasswords(set))
	logger.Debug("analyzer ready", "common_passwords", a.CommonPasswordCount())

	return a
}

// openOutput returns the report destination. Files are created with 0600
// permissions; close must be called when the report is written.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return f, f.Close, nil
}
