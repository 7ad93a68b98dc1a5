package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/storestats/internal/model"
)

// bannerWidth is the width of the rule around the analysis banner.
const bannerWidth = 50

// SimpleWriter outputs the report as console text.
type SimpleWriter struct {
	baseWriter

	// showOverview controls whether the preview and column summary are printed.
	showOverview bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithOverview enables or disables the preview and column summary tables.
func WithOverview(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showOverview = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:   newBaseWriter(output),
		showOverview: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in console text format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Loaded dataset: %s (%s, %s)\n",
		report.Source, plural(report.Rows, "row"), plural(len(report.Columns), "column"))

	if w.showOverview {
		if err := w.writeOverview(&sb, report); err != nil {
			return 0, err
		}
	}

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\nOnline store analysis\n")
	sb.WriteString(strings.Repeat("=", bannerWidth))
	sb.WriteString("\n")

	for _, s := range report.Sections {
		if err := w.writeSection(&sb, s); err != nil {
			return 0, err
		}
	}

	if len(report.Errors) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, e := range report.Errors {
			fmt.Fprintf(&sb, "  - %s\n", e)
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// writeOverview writes the preview rows and the column summary.
func (w *SimpleWriter) writeOverview(sb *strings.Builder, report *model.Report) error {
	sb.WriteString("\n")
	switch {
	case report.Rows == 0:
		sb.WriteString("Preview: no rows\n")
	case len(report.Preview.Rows) > 0:
		fmt.Fprintf(sb, "First %d rows:\n", len(report.Preview.Rows))
		if err := WriteTable(sb, report.Preview.Header, report.Preview.Rows); err != nil {
			return err
		}
	}

	sb.WriteString("\nColumn summary:\n")
	header, rows := columnSummaryTable(report.Columns)
	return WriteTable(sb, header, rows)
}

// writeSection writes one numbered section and its table.
func (w *SimpleWriter) writeSection(sb *strings.Builder, s *model.Section) error {
	fmt.Fprintf(sb, "\n%d. %s\n", s.Number, headline(s))

	table := tableOf(s)
	if table == nil {
		return nil
	}
	if table.caption != "" {
		sb.WriteString(table.caption)
		sb.WriteString("\n")
	}
	return WriteTable(sb, table.header, table.rows)
}
