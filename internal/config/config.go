package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"

	// DefaultBatchSize is the number of passwords analyzed concurrently
	// in batch mode. Analysis is CPU-bound and cheap, so a small pool suffices.
	DefaultBatchSize = 8

	// DefaultUseDatabase enables the imported word lists stored in the
	// XDG data directory.
	DefaultUseDatabase = true
)

// Report formats accepted in the configuration file.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config holds all runtime options for passcheck.
// It is populated from CLI flags, optionally merged with the configuration
// file, and passed explicitly to the code that needs it.
type Config struct {
	// Verbose enables debug-level log output.
	Verbose bool

	// BatchSize is the number of concurrent analyses in batch mode.
	BatchSize int

	// ConfigFilePath is the explicitly requested configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// WordlistPath is a newline-separated common-password file.
	// When set, it takes precedence over the database.
	WordlistPath string

	// DBDir is the directory holding the word-list database.
	DBDir string

	// UseDatabase enables loading common passwords from the database
	// when no WordlistPath is given.
	UseDatabase bool

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to this path instead of stdout.
	ReportFile string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize:   DefaultBatchSize,
		DBDir:       XDGDataDir(),
		UseDatabase: DefaultUseDatabase,
	}
}

// XDGDataDir returns the XDG data directory for passcheck.
// On Linux: ~/.local/share/passcheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passcheck.
// On Linux: ~/.config/passcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// Format returns the selected report format.
func (c *Config) Format() string {
	switch {
	case c.JSONReport:
		return FormatJSON
	case c.MarkdownReport:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Merge applies values from the configuration file.
// isSet reports whether a CLI flag was given explicitly; explicit flags
// always win over the file. A nil file is a no-op.
func (c *Config) Merge(f *File, isSet func(flag string) bool) error {
	if f == nil {
		return nil
	}
	if isSet == nil {
		isSet = func(string) bool { return false }
	}

	if f.Wordlist != "" && !isSet("wordlist") {
		c.WordlistPath = f.Wordlist
	}
	if f.BatchSize != 0 && !isSet("batch") {
		c.BatchSize = f.BatchSize
	}
	if f.UseDatabase != nil && !isSet("no-db") {
		c.UseDatabase = *f.UseDatabase
	}

	if f.Format != "" && !isSet("json") && !isSet("markdown") {
		switch f.Format {
		case FormatText:
			c.JSONReport, c.MarkdownReport = false, false
		case FormatJSON:
			c.JSONReport, c.MarkdownReport = true, false
		case FormatMarkdown:
			c.JSONReport, c.MarkdownReport = false, true
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f.Format)
		}
	}

	return nil
}
