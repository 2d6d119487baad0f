package database

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/nao1215/passcheck/internal/wordlist"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *WordlistDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "newdir", "subdir")
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		dbPath := filepath.Join(dbDir, "passcheck.db")
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
		if db.Path() != dbPath {
			t.Errorf("Path() = %q, want %q", db.Path(), dbPath)
		}
	})

	t.Run("read-only options fail when database does not exist", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "missing")
		db, err := Open(dbDir, ReadOnlyOptions())
		if err == nil {
			_ = db.Close()
			t.Fatal("expected error for missing database")
		}
		if _, statErr := os.Stat(dbDir); !os.IsNotExist(statErr) {
			t.Error("directory should not have been created")
		}
	})

	t.Run("existing options fail when database does not exist", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "missing")
		db, err := Open(dbDir, ExistingOptions())
		if err == nil {
			_ = db.Close()
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("read-only database rejects writes", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		_ = db.Close()

		db, err = Open(dbDir, ReadOnlyOptions())
		if err != nil {
			t.Fatalf("failed to open read-only database: %v", err)
		}
		defer db.Close()

		if _, err := db.ImportWordlist(t.Context(), "leaked", []string{"hunter2"}); err == nil {
			t.Error("ImportWordlist() on a read-only database should fail")
		}
		if _, err := db.ListWordlists(t.Context()); err != nil {
			t.Errorf("ListWordlists() error = %v", err)
		}
	})

	t.Run("reopens existing database", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()
		db, err := Open(dbDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		if _, err := db.ImportWordlist(t.Context(), "leaked", []string{"hunter2"}); err != nil {
			t.Fatalf("ImportWordlist() error = %v", err)
		}
		_ = db.Close()

		db, err = Open(dbDir, ReadOnlyOptions())
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close()

		count, err := db.CountWords(t.Context())
		if err != nil {
			t.Fatalf("CountWords() error = %v", err)
		}
		if count != 1 {
			t.Errorf("CountWords() = %d, want 1", count)
		}
	})
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true before the database was created")
	}

	db, err := Open(dir, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	_ = db.Close()

	if !Exists(dir) {
		t.Error("Exists() = false after the database was created")
	}
}

func TestWordlistDB_ImportWordlist(t *testing.T) {
	t.Parallel()

	t.Run("normalizes and deduplicates", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		info, err := db.ImportWordlist(t.Context(), "leaked", []string{"Hunter2", " hunter2 ", "", "Dragon"})
		if err != nil {
			t.Fatalf("ImportWordlist() error = %v", err)
		}

		if info.Name != "leaked" {
			t.Errorf("Name = %q, want %q", info.Name, "leaked")
		}
		if info.WordCount != 2 {
			t.Errorf("WordCount = %d, want 2", info.WordCount)
		}
		if len(info.Digest) != 64 {
			t.Errorf("Digest length = %d, want 64", len(info.Digest))
		}
		if info.ImportedAt.IsZero() {
			t.Error("ImportedAt should be set")
		}

		words, err := db.Load(t.Context())
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		slices.Sort(words)
		if !slices.Equal(words, []string{"dragon", "hunter2"}) {
			t.Errorf("Load() = %v", words)
		}
	})

	t.Run("rejects empty list", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		_, err := db.ImportWordlist(t.Context(), "blank", []string{" ", ""})
		if !errors.Is(err, ErrEmptyWordlist) {
			t.Errorf("error = %v, want ErrEmptyWordlist", err)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		if _, err := db.ImportWordlist(t.Context(), "leaked", []string{"a"}); err != nil {
			t.Fatalf("ImportWordlist() error = %v", err)
		}
		_, err := db.ImportWordlist(t.Context(), "leaked", []string{"b"})
		if !errors.Is(err, ErrWordlistExists) {
			t.Errorf("error = %v, want ErrWordlistExists", err)
		}
	})

	t.Run("rejects identical content under another name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		if _, err := db.ImportWordlist(t.Context(), "first", []string{"a", "b"}); err != nil {
			t.Fatalf("ImportWordlist() error = %v", err)
		}
		_, err := db.ImportWordlist(t.Context(), "second", []string{"B", "A"})
		if !errors.Is(err, ErrWordlistExists) {
			t.Errorf("error = %v, want ErrWordlistExists", err)
		}
	})
}

func TestWordlistDB_ListAndDelete(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := t.Context()

	if _, err := db.ImportWordlist(ctx, "zeta", []string{"zzz", "shared"}); err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}
	if _, err := db.ImportWordlist(ctx, "alpha", []string{"aaa"}); err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}

	lists, err := db.ListWordlists(ctx)
	if err != nil {
		t.Fatalf("ListWordlists() error = %v", err)
	}
	if len(lists) != 2 || lists[0].Name != "alpha" || lists[1].Name != "zeta" {
		t.Fatalf("ListWordlists() = %+v, want alpha then zeta", lists)
	}

	if err := db.DeleteWordlist(ctx, "zeta"); err != nil {
		t.Fatalf("DeleteWordlist() error = %v", err)
	}

	count, err := db.CountWords(ctx)
	if err != nil {
		t.Fatalf("CountWords() error = %v", err)
	}
	if count != 1 {
		t.Errorf("CountWords() after delete = %d, want 1", count)
	}

	if err := db.DeleteWordlist(ctx, "zeta"); !errors.Is(err, ErrWordlistNotFound) {
		t.Errorf("second DeleteWordlist() error = %v, want ErrWordlistNotFound", err)
	}
}

func TestWordlistDB_DeleteKeepsSharedWords(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := t.Context()

	if _, err := db.ImportWordlist(ctx, "first", []string{"dragon", "sunshine"}); err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}
	if _, err := db.ImportWordlist(ctx, "second", []string{"dragon", "trustno1"}); err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}

	count, err := db.CountWords(ctx)
	if err != nil {
		t.Fatalf("CountWords() error = %v", err)
	}
	if count != 3 {
		t.Errorf("CountWords() = %d, want 3 distinct words", count)
	}

	if err := db.DeleteWordlist(ctx, "first"); err != nil {
		t.Fatalf("DeleteWordlist() error = %v", err)
	}

	words, err := db.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	slices.Sort(words)
	if !slices.Equal(words, []string{"dragon", "trustno1"}) {
		t.Errorf("Load() after deleting first = %v, want [dragon trustno1]", words)
	}

	lists, err := db.ListWordlists(ctx)
	if err != nil {
		t.Fatalf("ListWordlists() error = %v", err)
	}
	if len(lists) != 1 || lists[0].WordCount != 2 {
		t.Errorf("ListWordlists() = %+v, want second with 2 words", lists)
	}

	set := wordlist.Load(ctx, db, nil)
	if !set.Contains("dragon") {
		t.Error("shared word should still be loaded from the remaining list")
	}
}

func TestWordlistDB_Source(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	if _, err := db.ImportWordlist(t.Context(), "leaked", []string{"Tr0ub4dor&3"}); err != nil {
		t.Fatalf("ImportWordlist() error = %v", err)
	}

	var src wordlist.Source = db
	set := wordlist.Load(t.Context(), src, nil)
	if !set.Contains("tr0ub4dor&3") {
		t.Error("set loaded from database should contain imported word")
	}
	if set.Contains("password") {
		t.Error("set loaded from database should not contain built-in words")
	}
}

func TestDigestWords(t *testing.T) {
	t.Parallel()

	a := digestWords(normalizeWords([]string{"b", "a"}))
	b := digestWords(normalizeWords([]string{"A", "B", "a"}))
	if a != b {
		t.Errorf("digest should not depend on order or case: %s != %s", a, b)
	}
	if a == digestWords([]string{"a"}) {
		t.Error("different content should produce different digests")
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "sqlite default", input: "2026-01-02 15:04:05"},
		{name: "rfc3339", input: "2026-01-02T15:04:05Z"},
		{name: "rfc3339 nano", input: "2026-01-02T15:04:05.123456789Z"},
		{name: "garbage", input: "not a time", zero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tt.input)
			if got.IsZero() != tt.zero {
				t.Errorf("parseTimestamp(%q) = %v, zero want %v", tt.input, got, tt.zero)
			}
		})
	}
}
