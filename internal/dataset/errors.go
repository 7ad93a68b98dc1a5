package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Load errors.
// Every error returned by Load is a *LoadError that matches exactly one of
// these sentinels with errors.Is.
var (
	// ErrSourceNotFound is returned when the dataset path does not exist.
	ErrSourceNotFound = errors.New("dataset not found")

	// ErrLoadFailure is returned when the source exists but cannot be read
	// or parsed into a table.
	ErrLoadFailure = errors.New("failed to load dataset")
)

// Parse errors wrapped into ErrLoadFailure.
var (
	// ErrNoHeader is returned when the source contains no header row.
	ErrNoHeader = errors.New("no columns to parse from source")

	// ErrTooManyFields is returned when a record has more cells than the header.
	ErrTooManyFields = errors.New("record has more fields than the header")

	// ErrNoWorksheet is returned when a workbook contains no worksheet.
	ErrNoWorksheet = errors.New("workbook has no worksheet")
)

// LoadError describes a failed Load.
type LoadError struct {
	// Kind is ErrSourceNotFound or ErrLoadFailure.
	Kind error

	// Path is the source that was being loaded.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if errors.Is(e.Kind, ErrSourceNotFound) {
		return fmt.Sprintf("%s: %s (check the path)", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap returns both the kind sentinel and the cause so that errors.Is
// matches either of them.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// notFound builds a LoadError of kind ErrSourceNotFound.
func notFound(path string, err error) *LoadError {
	return &LoadError{Kind: ErrSourceNotFound, Path: path, Err: err}
}

// loadFailure builds a LoadError of kind ErrLoadFailure.
func loadFailure(path string, err error) *LoadError {
	return &LoadError{Kind: ErrLoadFailure, Path: path, Err: err}
}

// MissingColumnsError lists the requirements a dataset failed to satisfy.
type MissingColumnsError struct {
	// Missing holds the names of columns that are absent.
	Missing []string

	// NotNumeric holds the names of columns that exist but are not numeric.
	NotNumeric []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	parts := make([]string, 0, 2)
	switch len(e.Missing) {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("column %s not found", quoteNames(e.Missing)))
	default:
		parts = append(parts, fmt.Sprintf("columns %s not found", quoteNames(e.Missing)))
	}
	switch len(e.NotNumeric) {
	case 0:
	case 1:
		parts = append(parts, fmt.Sprintf("column %s is not numeric", quoteNames(e.NotNumeric)))
	default:
		parts = append(parts, fmt.Sprintf("columns %s are not numeric", quoteNames(e.NotNumeric)))
	}
	return strings.Join(parts, "; ")
}

// quoteNames renders names as 'a', 'b'.
func quoteNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
