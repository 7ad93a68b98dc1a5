package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/storestats/internal/config"
	"github.com/nao1215/storestats/internal/dataset"
	applog "github.com/nao1215/storestats/internal/log"
	"github.com/spf13/cobra"
)

// getBoolFlag retrieves a bool flag from the command or the root's
// persistent flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// getStringFlag retrieves a string flag from the command or the root's
// persistent flags.
func getStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return v
}

// loadBaseConfig builds a Config from defaults, the config file and the
// global flags.
func loadBaseConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getBoolFlag(cmd, "verbose")
	cfg.LogJSON = getBoolFlag(cmd, "log-json")
	cfg.ConfigFilePath = getStringFlag(cmd, "config")

	if _, err := config.Load(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return cfg, nil
}

// setupLogger creates a structured logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return applog.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}
	return applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// loadDataset reads the dataset and applies the configured column aliases.
func loadDataset(cfg *config.Config, logger *slog.Logger) (*dataset.Dataset, error) {
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	ds.Rename(cfg.Columns)

	logger.Debug("dataset loaded",
		"source", ds.Source,
		"format", string(ds.Format),
		"rows", ds.Rows(),
		"columns", len(ds.Columns()),
	)
	return ds, nil
}

// nopCloser is returned by openOutput when writing to stdout.
func nopCloser() error { return nil }

// openOutput returns the report destination: path when set, otherwise the
// command's stdout. The returned close function must be called when done.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), nopCloser, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
