// Package dataset loads tabular product data and exposes it column by column.
//
// A Dataset is built from a header row and a list of records. Cells are kept
// as raw strings together with a null mask; columns whose non-null cells all
// parse as finite numbers are additionally stored as float64 values and
// reported as KindNumeric.
//
// Sources are selected by file extension:
//   - .xlsx / .xlsm: first worksheet of an Excel workbook
//   - .tsv / .tab: tab separated values
//   - anything else: comma separated values
//
// Load reports two kinds of failure, ErrSourceNotFound and ErrLoadFailure,
// both wrapped in a *LoadError. Analyses use Check to ask whether the columns
// they need are present with the right kind; a failed check yields a
// *MissingColumnsError that callers report as a diagnostic.
package dataset
