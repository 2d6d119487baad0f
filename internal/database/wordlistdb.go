package database

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/passcheck/internal/wordlist"
)

// dbFileName is the SQLite file created inside the data directory.
const dbFileName = "passcheck.db"

// WordlistDB stores imported common-password lists.
// It satisfies wordlist.Source, so it can feed the analyzer directly.
type WordlistDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures WordlistDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool

	// ReadOnly opens the file with mode=ro. The schema is not created and
	// the journal mode is left as it is, so the file is never written.
	ReadOnly bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// ExistingOptions opens an existing database for reading and writing
// without creating it.
func ExistingOptions() Options {
	return Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	}
}

// ReadOnlyOptions opens an existing database for reading only.
func ReadOnlyOptions() Options {
	return Options{
		CreateIfNotExists: false,
		ReadOnly:          true,
	}
}

// WordlistInfo describes one imported list.
type WordlistInfo struct {
	ID         int64
	Name       string
	Digest     string
	ImportedAt time.Time
	WordCount  int
}

// Exists reports whether a database file is present in dbDir.
func Exists(dbDir string) bool {
	info, err := os.Stat(filepath.Join(dbDir, dbFileName))
	return err == nil && !info.IsDir()
}

// Open opens or creates a WordlistDB in dbDir.
func Open(dbDir string, opts Options) (*WordlistDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists || opts.ReadOnly {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else if err := os.MkdirAll(dbDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	mode := "rw"
	switch {
	case opts.ReadOnly:
		mode = "ro"
	case opts.CreateIfNotExists:
		mode = "rwc"
	}

	// foreign_keys is per connection, so it is set through the DSN.
	db, err := sql.Open("sqlite", dbPath+"?mode="+mode+"&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	wdb := &WordlistDB{db: db, dbPath: dbPath}

	if opts.ReadOnly {
		return wdb, nil
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := wdb.createTables(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return wdb, nil
}

// Close closes the database connection.
func (w *WordlistDB) Close() error {
	return w.db.Close()
}

// Path returns the database file path.
func (w *WordlistDB) Path() string {
	return w.dbPath
}

func (w *WordlistDB) createTables(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS wordlists (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		digest TEXT NOT NULL UNIQUE,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		word_count INTEGER NOT NULL
	);

	-- A word shared by several lists has one row per list, so deleting
	-- one list leaves the others complete.
	CREATE TABLE IF NOT EXISTS wordlist_words (
		wordlist_id INTEGER NOT NULL REFERENCES wordlists(id) ON DELETE CASCADE,
		word TEXT NOT NULL,
		PRIMARY KEY (wordlist_id, word)
	);

	CREATE INDEX IF NOT EXISTS idx_wordlist_words_word ON wordlist_words(word);
	`

	_, err := w.db.ExecContext(ctx, schema)
	return err
}

// ImportWordlist stores words under name. Words are normalized and
// deduplicated; a list whose content digest matches an existing list is
// rejected with ErrWordlistExists.
func (w *WordlistDB) ImportWordlist(ctx context.Context, name string, words []string) (*WordlistInfo, error) {
	normalized := normalizeWords(words)
	if len(normalized) == 0 {
		return nil, ErrEmptyWordlist
	}
	digest := digestWords(normalized)

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() //nolint:errcheck // Rollback after Commit is a no-op

	var existing int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM wordlists WHERE name = ? OR digest = ?`, name, digest,
	).Scan(&existing)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing word lists: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: %s", ErrWordlistExists, name)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO wordlists (name, digest, word_count) VALUES (?, ?, ?)`,
		name, digest, len(normalized),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert word list: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get word list id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO wordlist_words (wordlist_id, word) VALUES (?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range normalized {
		if _, err := stmt.ExecContext(ctx, id, word); err != nil {
			return nil, fmt.Errorf("failed to insert word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit word list: %w", err)
	}

	return w.getWordlist(ctx, name)
}

// ListWordlists returns all imported lists ordered by name.
func (w *WordlistDB) ListWordlists(ctx context.Context) ([]WordlistInfo, error) {
	rows, err := w.db.QueryContext(ctx, `
	SELECT id, name, digest, imported_at, word_count
	FROM wordlists
	ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list word lists: %w", err)
	}
	defer rows.Close()

	var lists []WordlistInfo
	for rows.Next() {
		info, err := scanWordlist(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *info)
	}

	return lists, rows.Err()
}

// DeleteWordlist removes a list. Words that another list also contains
// stay in the store.
func (w *WordlistDB) DeleteWordlist(ctx context.Context, name string) error {
	result, err := w.db.ExecContext(ctx, `DELETE FROM wordlists WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete word list: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete word list: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrWordlistNotFound, name)
	}

	return nil
}

// CountWords returns the number of distinct stored words.
func (w *WordlistDB) CountWords(ctx context.Context) (int, error) {
	var count int
	if err := w.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT word) FROM wordlist_words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// Name identifies the database in log output.
func (w *WordlistDB) Name() string {
	return w.dbPath
}

// Load returns every distinct stored word. It implements wordlist.Source.
func (w *WordlistDB) Load(ctx context.Context) ([]string, error) {
	rows, err := w.db.QueryContext(ctx, `SELECT DISTINCT word FROM wordlist_words`)
	if err != nil {
		return nil, fmt.Errorf("failed to load words: %w", err)
	}
	defer rows.Close()

	words := make([]string, 0)
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

func (w *WordlistDB) getWordlist(ctx context.Context, name string) (*WordlistInfo, error) {
	row := w.db.QueryRowContext(ctx, `
	SELECT id, name, digest, imported_at, word_count
	FROM wordlists
	WHERE name = ?
	`, name)

	info, err := scanWordlist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrWordlistNotFound, name)
	}
	return info, err
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWordlist(row rowScanner) (*WordlistInfo, error) {
	var info WordlistInfo
	var timestamp string
	if err := row.Scan(&info.ID, &info.Name, &info.Digest, &timestamp, &info.WordCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}
	info.ImportedAt = parseTimestamp(timestamp)
	return &info, nil
}

// normalizeWords trims, lowercases, deduplicates and sorts words.
func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = wordlist.Normalize(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}

// digestWords returns the hex SHA3-256 digest of sorted, normalized words.
func digestWords(words []string) string {
	h := sha3.New256()
	for _, word := range words {
		_, _ = h.Write([]byte(word))
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// timestampFormats contains the timestamp formats that SQLite may return.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp tries each known format and returns zero time if none match.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
