package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the loader so callers
// can use errors.Is() while still getting a readable message.
var (
	// ErrNoDataset is returned when the dataset path is empty.
	ErrNoDataset = errors.New("no dataset specified: provide a file path")

	// ErrInvalidTopN is returned when the ranking length is not positive.
	ErrInvalidTopN = errors.New("invalid top: must be positive")

	// ErrInvalidPreviewRows is returned when the preview row count is negative.
	// Zero disables the preview.
	ErrInvalidPreviewRows = errors.New("invalid preview rows: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownColumnAlias is returned when the config file maps a column
	// that the report does not use, or maps it to an empty header.
	ErrUnknownColumnAlias = errors.New("unknown column alias")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
