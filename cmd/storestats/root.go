package main

import (
	"fmt"
	"os"

	"github.com/nao1215/storestats/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for storestats.
// Running it without a subcommand generates the report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storestats [dataset]",
		Short: "Statistics report for an online store product table",
		Long: `storestats loads a table of store products and prints a report:

  1. Average product rating
  2. Most frequent brand
  3. Best-selling brand and the top brands by units sold
  4. Average rating per category
  5. Units sold per color
  6. Top brands by stock efficiency

The dataset defaults to ` + config.DefaultDatasetPath + ` and may be CSV, TSV or XLSX.
Sections whose columns are missing are skipped with a diagnostic.

Examples:
  # Report on online_store_data.csv in the current directory
  storestats

  # Report on another file
  storestats data/products.xlsx

  # Markdown report written to a file
  storestats -m -o reports/store.md

  # Show the top 10 brands in rankings
  storestats -n 10`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log lines as JSON")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .storestats in current directory, XDG config or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().IntP("top", "n", config.DefaultTopN,
		"Number of brands in the best-selling and efficiency rankings")
	cmd.Flags().IntP("preview", "p", config.DefaultPreviewRows,
		"Number of rows in the dataset preview (0 to disable)")

	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
