// Package report renders a model.Report.
//
// This package contains writers for different output formats:
//   - SimpleWriter: console text with bordered tables
//   - MarkdownWriter: Markdown with tables, alerts and a mermaid pie chart
//   - JSONWriter and FullJSONWriter: structured JSON output
//
// Writers implement the Writer interface so the CLI can pick one by flag.
// WriteTable is exported for other console output such as query results.
package report
