package model

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
)

// Report is the result of one run of the report generator over a dataset.
type Report struct {
	// ID identifies the run.
	ID string `json:"id"`

	// Source is the path of the dataset.
	Source string `json:"source"`

	// Format is the encoding of the dataset (csv, tsv or xlsx).
	Format string `json:"format"`

	// GeneratedAt is the time the report was created.
	GeneratedAt time.Time `json:"generated_at"`

	// Rows is the number of records in the dataset.
	Rows int `json:"rows"`

	// Columns summarizes every column in source order.
	Columns []ColumnSummary `json:"columns"`

	// Preview holds the first records of the dataset.
	Preview Preview `json:"preview"`

	// Sections holds the analyses in the order they ran.
	Sections []*Section `json:"sections"`

	// Errors lists step failures recorded while the pipeline continued.
	Errors []string `json:"errors,omitempty"`
}

// Preview is a small sample of the dataset.
type Preview struct {
	// Header holds the column names.
	Header []string `json:"header"`

	// Rows holds raw cells, one slice per record.
	Rows [][]string `json:"rows"`
}

// NewReport creates an empty report for the given source.
func NewReport(source, format string) *Report {
	return &Report{
		ID:          uuid.NewString(),
		Source:      source,
		Format:      format,
		GeneratedAt: time.Now().UTC(),
		Columns:     make([]ColumnSummary, 0),
		Sections:    make([]*Section, 0),
	}
}

// AddSection appends a section and numbers it after the existing ones.
func (r *Report) AddSection(s *Section) {
	s.Number = len(r.Sections) + 1
	r.Sections = append(r.Sections, s)
}

// Section returns the section with the given key, or nil.
func (r *Report) Section(key string) *Section {
	for _, s := range r.Sections {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// AddError records a failure that did not stop the run.
func (r *Report) AddError(err error) {
	r.Errors = append(r.Errors, err.Error())
}

// ColumnSummary describes a single column of the dataset.
type ColumnSummary struct {
	// Name is the column name.
	Name string `json:"name"`

	// Kind is "numeric" or "text".
	Kind string `json:"kind"`

	// NonNull is the number of non-null cells.
	NonNull int `json:"non_null"`

	// Stats is set for numeric columns holding at least one value.
	Stats *NumericSummary `json:"stats,omitempty"`
}

// NumericSummary holds descriptive statistics of a numeric column.
type NumericSummary struct {
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`

	// StdDev is the sample standard deviation, 0 with fewer than two values.
	StdDev float64 `json:"std_dev"`
}

// MarshalJSON encodes the summary with non-finite statistics as null.
func (n NumericSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min    *float64 `json:"min"`
		Mean   *float64 `json:"mean"`
		Median *float64 `json:"median"`
		Max    *float64 `json:"max"`
		StdDev *float64 `json:"std_dev"`
	}{
		Min:    finiteOrNil(n.Min),
		Mean:   finiteOrNil(n.Mean),
		Median: finiteOrNil(n.Median),
		Max:    finiteOrNil(n.Max),
		StdDev: finiteOrNil(n.StdDev),
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
