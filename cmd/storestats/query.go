package main

import (
	"fmt"

	"github.com/nao1215/storestats/internal/database"
	"github.com/nao1215/storestats/internal/report"
	"github.com/spf13/cobra"
)

// NewQueryCmd creates the query command.
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <SQL>",
		Short: "Run SQL against the dataset",
		Long: `Query loads the dataset into an in-memory SQLite database and runs SQL on it.

Numeric columns are stored as REAL, other columns as TEXT, and empty or
missing cells as NULL. Nothing is written to disk.

Examples:
  # Units sold per brand
  storestats query "SELECT brand, SUM(quantity_sold) AS sold FROM products GROUP BY brand ORDER BY sold DESC"

  # Query an XLSX file under a different table name
  storestats query -d data/store.xlsx -t items "SELECT COUNT(*) FROM items"

  # JSON rows
  storestats query -j "SELECT * FROM products LIMIT 3"`,
		Args: cobra.ExactArgs(1),
		RunE: runQueryCmd,
	}

	cmd.Flags().StringP("dataset", "d", "",
		"Dataset file path (default: config file value or online_store_data.csv)")
	cmd.Flags().StringP("table", "t", database.DefaultTable,
		"Table name the dataset is imported as")
	cmd.Flags().BoolP("json", "j", false,
		"Output rows as JSON")

	return cmd
}

// runQueryCmd executes the query command.
func runQueryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadBaseConfig(cmd)
	if err != nil {
		return err
	}

	path, err := cmd.Flags().GetString("dataset")
	if err != nil {
		return err
	}
	if path != "" {
		cfg.DatasetPath = path
	}

	table, err := cmd.Flags().GetString("table")
	if err != nil {
		return err
	}
	if err := database.ValidateTableName(table); err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)
	ctx := cmd.Context()

	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Import(ctx, ds, table); err != nil {
		return err
	}

	logger.Debug("running query", "table", table, "sql", args[0])
	result, err := db.Query(ctx, args[0])
	if err != nil {
		return err
	}

	if asJSON {
		_, err = report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint()).WriteValue(result.Records())
		return err
	}
	return report.WriteTable(cmd.OutOrStdout(), result.Columns, result.Strings())
}
