package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/storestats/internal/config"
	"github.com/nao1215/storestats/internal/model"
	"github.com/nao1215/storestats/internal/pipeline"
	"github.com/nao1215/storestats/internal/report"
	"github.com/spf13/cobra"
)

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := generateReport(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return outputReport(cmd, cfg, r)
}

// buildConfig creates a Config from the config file, the report flags and
// the optional dataset argument. Flags override the file only when set.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadBaseConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("top") {
		if cfg.TopN, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("preview") {
		if cfg.PreviewRows, err = flags.GetInt("preview"); err != nil {
			return nil, err
		}
	}

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.DatasetPath = args[0]
	}

	return cfg, nil
}

// generateReport loads the dataset and runs every report step over it.
// Only a load failure is returned as an error; failed sections are recorded
// in the report.
func generateReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.Report, error) {
	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return nil, err
	}

	r := model.NewReport(ds.Source, string(ds.Format))

	p := pipeline.DefaultPipeline(
		[]pipeline.Option{
			pipeline.WithLogger(logger),
			pipeline.WithContinueOnError(true),
		},
		pipeline.WithPipelineTopN(cfg.TopN),
		pipeline.WithPipelinePreviewRows(cfg.PreviewRows),
	)

	if err := p.Execute(ctx, ds, r); err != nil {
		return nil, fmt.Errorf("report generation failed: %w", err)
	}

	logger.Debug("report generated",
		"id", r.ID,
		"sections", len(r.Sections),
		"errors", len(r.Errors),
	)
	return r, nil
}

// newReportWriter picks the writer for the configured output format.
func newReportWriter(cfg *config.Config, w io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(w, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w)
	}
}

// outputReport writes the report to stdout or the configured file.
func outputReport(cmd *cobra.Command, cfg *config.Config, r *model.Report) (err error) {
	w, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	_, err = newReportWriter(cfg, w).Write(r)
	return err
}
