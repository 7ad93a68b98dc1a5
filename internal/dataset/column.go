package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column.
type Kind int

const (
	// KindText marks a column holding free text.
	KindText Kind = iota

	// KindNumeric marks a column whose non-null cells all parse as finite numbers.
	KindNumeric
)

// String returns the kind name used in column summaries.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// nullTokens are cell values read as missing.
var nullTokens = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"NULL": true,
	"null": true,
	"None": true,
	"-":    true,
}

// isNull reports whether a raw cell is a missing value.
func isNull(cell string) bool {
	return nullTokens[strings.TrimSpace(cell)]
}

// Column is a single named column of a Dataset.
type Column struct {
	// Name is the column header after normalisation.
	Name string

	// Kind is the inferred column type.
	Kind Kind

	cells []string
	nulls []bool
	nums  []float64
}

// newColumn builds a column from raw cells and infers its kind.
func newColumn(name string, cells []string) *Column {
	c := &Column{
		Name:  name,
		Kind:  KindNumeric,
		cells: cells,
		nulls: make([]bool, len(cells)),
	}

	nums := make([]float64, len(cells))
	for i, cell := range cells {
		if isNull(cell) {
			c.nulls[i] = true
			nums[i] = math.NaN()
			continue
		}
		if c.Kind != KindNumeric {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			c.Kind = KindText
			continue
		}
		nums[i] = v
	}

	if c.Kind == KindNumeric {
		c.nums = nums
	}
	return c
}

// Len returns the number of cells.
func (c *Column) Len() int {
	return len(c.cells)
}

// IsNull reports whether row i holds a missing value.
func (c *Column) IsNull(i int) bool {
	return c.nulls[i]
}

// Raw returns the cell of row i as it appeared in the source.
func (c *Column) Raw(i int) string {
	return c.cells[i]
}

// Text returns the cell of row i as text.
// ok is false when the cell is null.
func (c *Column) Text(i int) (string, bool) {
	if c.nulls[i] {
		return "", false
	}
	return c.cells[i], true
}

// Float returns the numeric value of row i.
// ok is false when the cell is null or the column is not numeric.
func (c *Column) Float(i int) (float64, bool) {
	if c.Kind != KindNumeric || c.nulls[i] {
		return 0, false
	}
	return c.nums[i], true
}

// Floats returns the non-null values of a numeric column in row order.
// It returns nil for text columns.
func (c *Column) Floats() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.nums))
	for i, v := range c.nums {
		if !c.nulls[i] {
			out = append(out, v)
		}
	}
	return out
}

// NonNull returns the number of non-null cells.
func (c *Column) NonNull() int {
	n := 0
	for _, null := range c.nulls {
		if !null {
			n++
		}
	}
	return n
}
