package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/storestats/internal/dataset"
)

// DefaultTable is the table name used when none is given.
const DefaultTable = "products"

var (
	// ErrInvalidTableName is returned when a table name is not a plain identifier.
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrEmptyQuery is returned when a query is blank.
	ErrEmptyQuery = errors.New("empty query")
)

// tableNamePattern matches names accepted by Import.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DB is an in-memory SQLite database.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB
}

// Open creates an empty in-memory database.
func Open(ctx context.Context) (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so the pool is
	// pinned to one connection that never expires.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database and discards its contents.
func (d *DB) Close() error {
	return d.db.Close()
}

// quoteIdent quotes an SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ValidateTableName reports whether name can be used as a table name.
func ValidateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits and underscores)", ErrInvalidTableName, name)
	}
	return nil
}

// Import creates table and copies every record of ds into it.
// Column names are kept as they appear in the dataset.
func (d *DB) Import(ctx context.Context, ds *dataset.Dataset, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}

	columns := ds.Columns()
	defs := make([]string, len(columns))
	names := make([]string, len(columns))
	marks := make([]string, len(columns))
	for i, col := range columns {
		typ := "TEXT"
		if col.Kind == dataset.KindNumeric {
			typ = "REAL"
		}
		names[i] = quoteIdent(col.Name)
		defs[i] = names[i] + " " + typ
		marks[i] = "?"
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(names, ", "), strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(columns))
	for r := 0; r < ds.Rows(); r++ {
		for c, col := range columns {
			args[c] = cellValue(col, r)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", r+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// cellValue converts a dataset cell to an SQL argument.
func cellValue(col *dataset.Column, row int) any {
	if col.IsNull(row) {
		return nil
	}
	if v, ok := col.Float(row); ok {
		return v
	}
	v, _ := col.Text(row)
	return v
}

// Result is the outcome of a query.
type Result struct {
	// Columns holds the result column names.
	Columns []string `json:"columns"`

	// Rows holds one slice per row. Values are nil, int64, float64 or string.
	Rows [][]any `json:"rows"`
}

// Strings renders every value as text, NULL for nil.
func (r *Result) Strings() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatValue(v)
		}
		out[i] = cells
	}
	return out
}

// Records returns each row as a map from column name to value.
func (r *Result) Records() []map[string]any {
	out := make([]map[string]any, len(r.Rows))
	for i, row := range r.Rows {
		rec := make(map[string]any, len(r.Columns))
		for j, name := range r.Columns {
			rec[name] = row[j]
		}
		out[i] = rec
	}
	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// Query runs q and returns every row.
func (d *DB) Query(ctx context.Context, q string) (*Result, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrEmptyQuery
	}

	rows, err := d.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := &Result{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			values[i] = normalize(v)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return result, nil
}

// normalize maps driver values to nil, int64, float64 or string.
func normalize(v any) any {
	switch x := v.(type) {
	case nil, int64, float64, string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	default:
		return fmt.Sprint(x)
	}
}
