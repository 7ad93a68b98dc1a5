package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/storestats/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// Skipped sections are rendered as GitHub alerts and the color popularity
// section gets a mermaid pie chart.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeOverview(md, report)
	w.writeSections(md, report)
	w.writeErrors(md, report)
	w.writeFooter(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the dataset properties.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Online store analysis")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Dataset", markdown.Code(report.Source)},
			{"Format", report.Format},
			{"Rows", strconv.Itoa(report.Rows)},
			{"Columns", strconv.Itoa(len(report.Columns))},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeOverview writes the preview rows and the column summary.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, report *model.Report) {
	switch {
	case report.Rows == 0:
		md.H2("Preview")
		md.PlainText("")
		md.PlainText("No rows.")
		md.PlainText("")
	case len(report.Preview.Rows) > 0:
		md.H2("Preview")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: escapeCells(report.Preview.Header),
			Rows:   escapeRows(report.Preview.Rows),
		})
		md.PlainText("")
	}

	md.H2("Columns")
	md.PlainText("")
	header, rows := columnSummaryTable(report.Columns)
	md.Table(markdown.TableSet{
		Header:    header,
		Rows:      escapeRows(rows),
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignLeft, markdown.AlignRight, markdown.AlignRight, markdown.AlignRight, markdown.AlignRight, markdown.AlignRight, markdown.AlignRight},
	})
	md.PlainText("")
}

// writeSections writes every numbered section.
func (w *MarkdownWriter) writeSections(md *markdown.Markdown, report *model.Report) {
	for _, s := range report.Sections {
		md.H2f("%d. %s", s.Number, s.Title)
		md.PlainText("")

		switch s.Status {
		case model.StatusSkipped:
			md.Warningf("Skipped: %s", s.Reason)
			md.PlainText("")
			continue
		case model.StatusNoData:
			md.Note("No data.")
			md.PlainText("")
			continue
		case model.StatusFailed:
			md.Cautionf("Failed: %s", s.Reason)
			md.PlainText("")
			continue
		}

		table := tableOf(s)
		if table == nil {
			md.PlainText(markdown.Bold(headline(s)))
			md.PlainText("")
			continue
		}

		if s.BestSelling != nil {
			md.PlainText(markdown.Bold(headline(s)))
			md.PlainText("")
		}
		if table.caption != "" {
			md.H3(strings.TrimSuffix(table.caption, ":"))
			md.PlainText("")
		}

		alignment := make([]markdown.TableAlignment, len(table.header))
		alignment[0] = markdown.AlignLeft
		for i := 1; i < len(alignment); i++ {
			alignment[i] = markdown.AlignRight
		}
		md.Table(markdown.TableSet{
			Header:    table.header,
			Rows:      escapeRows(table.rows),
			Alignment: alignment,
		})
		md.PlainText("")

		if s.ColorPopularity != nil {
			w.writePieChart(md, s)
		}
	}
}

// writePieChart writes a mermaid pie chart of units sold per color.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.Section) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Units sold per color"),
		piechart.WithShowData(true),
	)

	slices := 0
	for _, g := range s.ColorPopularity {
		if g.Total <= 0 {
			continue
		}
		chart.LabelAndFloatValue(g.Key, g.Total)
		slices++
	}
	if slices == 0 {
		return
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeErrors writes step failures, if any.
func (w *MarkdownWriter) writeErrors(md *markdown.Markdown, report *model.Report) {
	if len(report.Errors) == 0 {
		return
	}
	md.H2("Errors")
	md.PlainText("")
	md.Cautionf("%d step(s) failed while generating this report.", len(report.Errors))
	md.PlainText("")
	md.BulletList(report.Errors...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, report *model.Report) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report %s generated by storestats*", report.ID)
}

// escapeCells escapes pipe characters so cells do not break table rows.
func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func escapeRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = escapeCells(r)
	}
	return out
}
