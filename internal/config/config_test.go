package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default DatasetPath is online_store_data.csv", func(t *testing.T) {
		t.Parallel()
		if cfg.DatasetPath != "online_store_data.csv" {
			t.Errorf("expected DatasetPath to be 'online_store_data.csv', got '%s'", cfg.DatasetPath)
		}
	})

	t.Run("default TopN is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.TopN != 5 {
			t.Errorf("expected TopN to be 5, got %d", cfg.TopN)
		}
	})

	t.Run("default PreviewRows is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.PreviewRows != 5 {
			t.Errorf("expected PreviewRows to be 5, got %d", cfg.PreviewRows)
		}
	})

	t.Run("default output is console text", func(t *testing.T) {
		t.Parallel()
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected JSONReport and MarkdownReport to be false")
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "empty dataset", modify: func(c *Config) { c.DatasetPath = "" }, want: ErrNoDataset},
		{name: "zero top", modify: func(c *Config) { c.TopN = 0 }, want: ErrInvalidTopN},
		{name: "negative top", modify: func(c *Config) { c.TopN = -1 }, want: ErrInvalidTopN},
		{name: "zero preview is valid", modify: func(c *Config) { c.PreviewRows = 0 }},
		{name: "negative preview", modify: func(c *Config) { c.PreviewRows = -1 }, want: ErrInvalidPreviewRows},
		{name: "json only", modify: func(c *Config) { c.JSONReport = true }},
		{name: "markdown only", modify: func(c *Config) { c.MarkdownReport = true }},
		{
			name:   "json and markdown",
			modify: func(c *Config) { c.JSONReport, c.MarkdownReport = true, true },
			want:   ErrConflictingReportFormats,
		},
		{name: "known alias", modify: func(c *Config) { c.Columns["rating"] = "stars" }},
		{name: "unknown alias", modify: func(c *Config) { c.Columns["price"] = "cost" }, want: ErrUnknownColumnAlias},
		{name: "empty alias target", modify: func(c *Config) { c.Columns["brand"] = " " }, want: ErrUnknownColumnAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// writeConfig writes content to a config file in a temp directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".storestats")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()

	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("invalid number %q: %v", s, err)
	}
	return n
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.storestats")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `dataset: data/store.xlsx
report:
  top: 3
  preview_rows: 0
columns:
  rating: stars
  quantity_sold: units_sold
`)

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Dataset != "data/store.xlsx" {
			t.Errorf("expected dataset path, got %q", cf.Dataset)
		}
		if cf.Report.Top == nil || *cf.Report.Top != 3 {
			t.Errorf("expected top 3, got %v", cf.Report.Top)
		}
		if cf.Report.PreviewRows == nil || *cf.Report.PreviewRows != 0 {
			t.Errorf("expected preview rows 0, got %v", cf.Report.PreviewRows)
		}
		if cf.Columns["rating"] != "stars" || cf.Columns["quantity_sold"] != "units_sold" {
			t.Errorf("unexpected columns %v", cf.Columns)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `invalid: yaml: content: [}`)
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("initializes nil Columns map", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "report:\n  top: 2\n")
		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Columns == nil {
			t.Error("expected Columns map to be initialized")
		}
	})
}

// TestFileApplyTo tests merging a config file onto a Config.
func TestFileApplyTo(t *testing.T) {
	t.Parallel()

	t.Run("overrides only the values set", func(t *testing.T) {
		t.Parallel()

		top := 10
		cfg := NewConfig()
		(&File{Report: ReportSettings{Top: &top}}).ApplyTo(cfg)

		if cfg.TopN != 10 {
			t.Errorf("expected TopN 10, got %d", cfg.TopN)
		}
		if cfg.DatasetPath != DefaultDatasetPath {
			t.Errorf("expected default dataset, got %q", cfg.DatasetPath)
		}
		if cfg.PreviewRows != DefaultPreviewRows {
			t.Errorf("expected default preview rows, got %d", cfg.PreviewRows)
		}
	})

	t.Run("explicit zero preview disables the preview", func(t *testing.T) {
		t.Parallel()

		zero := 0
		cfg := NewConfig()
		(&File{Report: ReportSettings{PreviewRows: &zero}}).ApplyTo(cfg)

		if cfg.PreviewRows != 0 {
			t.Errorf("expected PreviewRows 0, got %d", cfg.PreviewRows)
		}
	})

	t.Run("merges column aliases", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Columns["brand"] = "maker"
		(&File{Columns: map[string]string{"rating": "stars"}}).ApplyTo(cfg)

		if cfg.Columns["brand"] != "maker" || cfg.Columns["rating"] != "stars" {
			t.Errorf("unexpected columns %v", cfg.Columns)
		}
	})
}

// TestLoad tests config file discovery and application.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("applies an explicit config file", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ConfigFilePath = writeConfig(t, "dataset: other.csv\n")

		path, err := Load(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != cfg.ConfigFilePath {
			t.Errorf("expected loaded path %q, got %q", cfg.ConfigFilePath, path)
		}
		if cfg.DatasetPath != "other.csv" {
			t.Errorf("expected dataset from file, got %q", cfg.DatasetPath)
		}
	})

	t.Run("missing explicit config file is an error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ConfigFilePath = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := Load(cfg)
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "missing.yaml") {
			t.Errorf("expected path in error, got %v", err)
		}
	})

	t.Run("non-positive top from the file fails validation", func(t *testing.T) {
		t.Parallel()

		for _, top := range []string{"0", "-1"} {
			cfg := NewConfig()
			cfg.ConfigFilePath = writeConfig(t, "report:\n  top: "+top+"\n")

			if _, err := Load(cfg); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.TopN != mustAtoi(t, top) {
				t.Errorf("expected TopN %s from file, got %d", top, cfg.TopN)
			}
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidTopN) {
				t.Errorf("top %s: expected ErrInvalidTopN, got %v", top, err)
			}
		}
	})

	t.Run("invalid explicit config file is an error", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ConfigFilePath = writeConfig(t, "report: [}")

		if _, err := Load(cfg); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "{}")
		if result := FindConfigFile(path); result != path {
			t.Errorf("expected %q, got %q", path, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected directory named %q, got %q", AppName, dir)
	}
}
