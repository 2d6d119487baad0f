package config

import "errors"

// Configuration errors.
// These errors are returned by Config.Validate, Config.Merge and
// LoadConfigFile so callers can use errors.Is for programmatic handling.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownFormat is returned when the configuration file names an
	// output format other than text, json or markdown.
	ErrUnknownFormat = errors.New("unknown report format: must be text, json or markdown")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
