package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/database"
	"github.com/nao1215/passcheck/internal/wordlist"
)

// NewWordlistCmd creates the wordlist command and its subcommands.
func NewWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Manage imported common-password lists",
		Long: `Wordlist manages the common-password lists stored in the passcheck
database. Once a list is imported, check, batch and interactive use it
instead of the built-in list unless --wordlist or --no-db is given.

Only public word lists are stored. Analyzed passwords are never saved.

Examples:
  passcheck wordlist import rockyou.txt --name rockyou
  passcheck wordlist list
  passcheck wordlist delete rockyou`,
	}

	cmd.PersistentFlags().String("db-dir", "",
		"Word-list database directory (default: XDG data directory)")

	cmd.AddCommand(newWordlistImportCmd())
	cmd.AddCommand(newWordlistListCmd())
	cmd.AddCommand(newWordlistDeleteCmd())

	return cmd
}

func newWordlistImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a newline-separated common-password list",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistImportCmd,
	}
	cmd.Flags().StringP("name", "n", "", "Name of the list (default: file name without extension)")
	return cmd
}

func newWordlistListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported word lists",
		Args:  cobra.NoArgs,
		RunE:  runWordlistListCmd,
	}
}

func newWordlistDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an imported word list",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistDeleteCmd,
	}
}

// wordlistDBDir returns --db-dir or the XDG data directory.
func wordlistDBDir(cmd *cobra.Command) (string, error) {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return "", err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}
	return dbDir, nil
}

// openWordlistDB opens the database in --db-dir or the XDG data directory.
func openWordlistDB(cmd *cobra.Command, opts database.Options) (*database.WordlistDB, error) {
	dbDir, err := wordlistDBDir(cmd)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(dbDir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runWordlistImportCmd(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd)
	ctx := cmd.Context()
	path := args[0]

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	words, err := wordlist.NewFileSource(path).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	db, err := openWordlistDB(cmd, database.DefaultOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	info, err := db.ImportWordlist(ctx, name, words)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	logger.Debug("word list imported",
		"name", info.Name,
		"words", info.WordCount,
		"db", db.Path(),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words from %s as %q\n", info.WordCount, path, info.Name)

	return nil
}

func runWordlistListCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	dbDir, err := wordlistDBDir(cmd)
	if err != nil {
		return err
	}

	// Listing never creates the database.
	var lists []database.WordlistInfo
	var db *database.WordlistDB
	if database.Exists(dbDir) {
		db, err = openWordlistDB(cmd, database.ReadOnlyOptions())
		if err != nil {
			return err
		}
		defer db.Close()

		if lists, err = db.ListWordlists(ctx); err != nil {
			return err
		}
	}
	if len(lists) == 0 {
		fmt.Fprintln(out, "No word lists imported.")
		fmt.Fprintf(out, "Using the built-in list of %d common passwords.\n", len(wordlist.DefaultWords()))
		return nil
	}

	fmt.Fprintf(out, "%-20s %-8s %-20s %s\n", "NAME", "WORDS", "IMPORTED", "DIGEST")
	for _, l := range lists {
		fmt.Fprintf(out, "%-20s %-8d %-20s %s\n",
			l.Name,
			l.WordCount,
			l.ImportedAt.Format("2006-01-02 15:04:05"),
			l.Digest[:12],
		)
	}

	total, err := db.CountWords(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d distinct words in %d list(s)\n", total, len(lists))

	return nil
}

func runWordlistDeleteCmd(cmd *cobra.Command, args []string) error {
	dbDir, err := wordlistDBDir(cmd)
	if err != nil {
		return err
	}
	if !database.Exists(dbDir) {
		return fmt.Errorf("%w: %s", database.ErrWordlistNotFound, args[0])
	}

	db, err := openWordlistDB(cmd, database.ExistingOptions())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteWordlist(cmd.Context(), args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted word list %q\n", args[0])
	return nil
}
