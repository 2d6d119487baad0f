package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Source supplies common passwords to the analyzer.
// Implementations may read from files, databases or memory.
type Source interface {
	// Name identifies the source in log output.
	Name() string

	// Load returns the words of the source. Order and duplicates do not matter.
	Load(ctx context.Context) ([]string, error)
}

// FileSource reads a newline-separated word list from disk.
type FileSource struct {
	// Path is the path of the word list file.
	Path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Name returns the file path.
func (f *FileSource) Name() string {
	return f.Path
}

// Load reads the file line by line.
func (f *FileSource) Load(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.Path) //nolint:gosec // User-provided word list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	words := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return words, nil
}

// StaticSource serves a fixed in-memory word list.
type StaticSource struct {
	name  string
	words []string
}

// NewStaticSource creates a Source that always returns words.
func NewStaticSource(name string, words ...string) *StaticSource {
	return &StaticSource{name: name, words: words}
}

// Name returns the configured name.
func (s *StaticSource) Name() string {
	return s.name
}

// Load returns the configured words.
func (s *StaticSource) Load(_ context.Context) ([]string, error) {
	return s.words, nil
}

// Load builds a Set from src, falling back to Default when src is nil,
// fails, or yields no usable words. Failures are logged and never returned.
func Load(ctx context.Context, src Source, logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.Default()
	}

	if src == nil {
		logger.Debug("no word list configured, using built-in common passwords",
			"count", len(defaultWords),
		)
		return Default()
	}

	words, err := src.Load(ctx)
	if err != nil {
		logger.Warn("failed to load common passwords, using built-in list",
			"source", src.Name(),
			"error", err,
		)
		return Default()
	}

	set := NewSet(words...)
	if set.Len() == 0 {
		logger.Warn("word list is empty, using built-in list",
			"source", src.Name(),
		)
		return Default()
	}

	logger.Debug("loaded common passwords",
		"source", src.Name(),
		"count", set.Len(),
	)
	return set
}
