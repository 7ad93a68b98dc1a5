package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultDatasetPath is read when no path is given on the command line
	// or in the config file.
	DefaultDatasetPath = "online_store_data.csv"

	// DefaultTopN is the length of the best-selling and efficiency rankings.
	DefaultTopN = 5

	// DefaultPreviewRows is the number of leading rows shown after loading.
	DefaultPreviewRows = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "storestats"
)

// Config holds all configuration options for storestats.
// It is populated from defaults, then the config file, then explicitly set
// CLI flags, and passed down rather than kept in global state.
type Config struct {
	// DatasetPath is the CSV, TSV or XLSX file to analyse.
	DatasetPath string

	// TopN limits the best-selling and efficiency rankings.
	TopN int

	// PreviewRows is the number of rows shown in the preview table.
	PreviewRows int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON switches log output to JSON lines.
	LogJSON bool

	// ConfigFilePath is the path given with --config. If empty, the tool
	// searches the usual locations (see FindConfigFile).
	ConfigFilePath string

	// Columns maps canonical column names to the headers used by the
	// dataset, e.g. "rating" -> "stars".
	Columns map[string]string

	// JSONReport enables JSON report output instead of console text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of console text.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DatasetPath: DefaultDatasetPath,
		TopN:        DefaultTopN,
		PreviewRows: DefaultPreviewRows,
		Columns:     make(map[string]string),
	}
}

// XDGConfigDir returns the XDG config directory for storestats.
// On Linux: ~/.config/storestats
// On macOS: ~/Library/Application Support/storestats
// On Windows: %APPDATA%\storestats
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return ErrNoDataset
	}

	if c.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return ValidateColumns(c.Columns)
}
