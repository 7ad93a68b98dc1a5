package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FormatFromPath picks the source format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".tsv", ".tab":
		return FormatTSV
	default:
		return FormatCSV
	}
}

// Load reads the dataset at path.
// A missing path yields a *LoadError matching ErrSourceNotFound; any other
// failure yields one matching ErrLoadFailure.
func Load(path string) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path, err)
		}
		return nil, loadFailure(path, err)
	}
	if info.IsDir() {
		return nil, loadFailure(path, errors.New("source is a directory"))
	}

	format := FormatFromPath(path)

	var header []string
	var records [][]string
	switch format {
	case FormatXLSX:
		header, records, err = readWorkbook(path)
	default:
		header, records, err = readDelimitedFile(path, delimiter(format))
	}
	if err != nil {
		return nil, loadFailure(path, err)
	}

	d, err := New(path, format, header, records)
	if err != nil {
		return nil, loadFailure(path, err)
	}
	return d, nil
}

// delimiter returns the field separator of a text format.
func delimiter(format Format) rune {
	if format == FormatTSV {
		return '\t'
	}
	return ','
}

// readDelimitedFile opens path and parses it with ReadDelimited.
func readDelimitedFile(path string, comma rune) ([]string, [][]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dataset path is intentional
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ReadDelimited(f, comma)
}

// ReadDelimited parses delimited text into a header and records.
// Blank lines are skipped and records may have any number of fields; New
// enforces the width against the header.
func ReadDelimited(r io.Reader, comma rune) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, err
	}
	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	return header, records, nil
}
