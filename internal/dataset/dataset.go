package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Recognised column names.
const (
	ColumnRating          = "rating"
	ColumnBrand           = "brand"
	ColumnQuantitySold    = "quantity_sold"
	ColumnQuantityInStock = "quantity_in_stock"
	ColumnCategory        = "category"
	ColumnColor           = "color"
)

// KnownColumns lists the recognised column names in report order.
var KnownColumns = []string{
	ColumnRating,
	ColumnBrand,
	ColumnQuantitySold,
	ColumnQuantityInStock,
	ColumnCategory,
	ColumnColor,
}

// Format identifies the source encoding of a dataset.
type Format string

const (
	// FormatCSV is comma separated text.
	FormatCSV Format = "csv"

	// FormatTSV is tab separated text.
	FormatTSV Format = "tsv"

	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// Dataset is an in-memory table stored column by column.
type Dataset struct {
	// Source is the path the dataset was loaded from.
	Source string

	// Format is the encoding of the source.
	Format Format

	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a Dataset from a header and its records.
// Records shorter than the header are padded with nulls; longer records
// return ErrTooManyFields.
func New(source string, format Format, header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrNoHeader
	}

	names := normalizeHeader(header)
	cells := make([][]string, len(names))
	for i := range cells {
		cells[i] = make([]string, len(records))
	}

	for r, rec := range records {
		if len(rec) > len(names) {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d", ErrTooManyFields, r+1, len(rec), len(names))
		}
		for c := range names {
			if c < len(rec) {
				cells[c][r] = rec[c]
			}
		}
	}

	d := &Dataset{
		Source:  source,
		Format:  format,
		columns: make([]*Column, len(names)),
		index:   make(map[string]int, len(names)),
		rows:    len(records),
	}
	for i, name := range names {
		d.columns[i] = newColumn(name, cells[i])
		d.index[name] = i
	}
	return d, nil
}

// normalizeHeader strips a UTF-8 BOM, names blank headers "Unnamed: <i>"
// and suffixes duplicates with ".1", ".2", ...
func normalizeHeader(header []string) []string {
	names := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	suffix := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for taken[name] {
			suffix[h]++
			name = fmt.Sprintf("%s.%d", h, suffix[h])
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// Rows returns the number of records.
func (d *Dataset) Rows() int {
	return d.rows
}

// Columns returns the columns in source order.
func (d *Dataset) Columns() []*Column {
	return d.columns
}

// ColumnNames returns the column names in source order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name. An exact match wins; otherwise the first
// column whose case-folded name matches is returned.
func (d *Dataset) Column(name string) (*Column, bool) {
	if i, ok := d.index[name]; ok {
		return d.columns[i], true
	}
	fold := cases.Fold()
	want := fold.String(name)
	for _, c := range d.columns {
		if fold.String(c.Name) == want {
			return c, true
		}
	}
	return nil, false
}

// Head returns up to n records as raw cells, nulls rendered as "NaN".
func (d *Dataset) Head(n int) [][]string {
	if n > d.rows {
		n = d.rows
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for r := 0; r < n; r++ {
		row := make([]string, len(d.columns))
		for c, col := range d.columns {
			if col.IsNull(r) {
				row[c] = "NaN"
				continue
			}
			row[c] = col.Raw(r)
		}
		out[r] = row
	}
	return out
}

// Rename applies column aliases. aliases maps a canonical name to the header
// used by the source. A rename is skipped when the source header is absent or
// the canonical name is already taken by another column.
func (d *Dataset) Rename(aliases map[string]string) {
	for canonical, sourceName := range aliases {
		i, ok := d.index[sourceName]
		if !ok || canonical == sourceName {
			continue
		}
		if _, taken := d.index[canonical]; taken {
			continue
		}
		delete(d.index, sourceName)
		d.columns[i].Name = canonical
		d.index[canonical] = i
	}
}
