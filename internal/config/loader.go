package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".storestats"

// xdgConfigFile is the file name looked up inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// ReportSettings holds the report section of the config file.
type ReportSettings struct {
	// Top overrides DefaultTopN when set.
	Top *int `yaml:"top,omitempty"`

	// PreviewRows overrides DefaultPreviewRows when set.
	PreviewRows *int `yaml:"preview_rows,omitempty"`
}

// File represents the structure of the .storestats configuration file.
type File struct {
	// Dataset is the default dataset path.
	Dataset string `yaml:"dataset,omitempty"`

	// Report holds ranking and preview settings.
	Report ReportSettings `yaml:"report,omitempty"`

	// Columns maps canonical column names to dataset headers.
	Columns map[string]string `yaml:"columns,omitempty"`
}

// ApplyTo copies the values set in the file onto cfg.
func (f *File) ApplyTo(cfg *Config) {
	if f.Dataset != "" {
		cfg.DatasetPath = f.Dataset
	}
	if f.Report.Top != nil {
		cfg.TopN = *f.Report.Top
	}
	if f.Report.PreviewRows != nil {
		cfg.PreviewRows = *f.Report.PreviewRows
	}
	if len(f.Columns) > 0 {
		if cfg.Columns == nil {
			cfg.Columns = make(map[string]string, len(f.Columns))
		}
		maps.Copy(cfg.Columns, f.Columns)
	}
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if cf.Columns == nil {
		cf.Columns = make(map[string]string)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .storestats in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .storestats in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	candidates := make([]string, 0, 3)
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load applies the config file found by FindConfigFile to cfg.
// An explicit path that does not exist is an error; a missing file in the
// default locations is not. It returns the path that was loaded, if any.
func Load(cfg *Config) (string, error) {
	path := FindConfigFile(cfg.ConfigFilePath)
	if path == "" {
		if cfg.ConfigFilePath != "" {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, cfg.ConfigFilePath)
		}
		return "", nil
	}

	file, err := LoadConfigFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) && cfg.ConfigFilePath == "" {
			return "", nil
		}
		return "", err
	}
	file.ApplyTo(cfg)
	return path, nil
}
