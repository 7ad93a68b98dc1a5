// Package model defines the report data structures shared by the pipeline
// and the report writers.
//
// This package contains the following main types:
//   - Report: the result of one run over a dataset
//   - Section: one numbered analysis of the report and its typed result
//   - ColumnSummary: the kind, null count and basic statistics of a column
//   - GroupTotal, GroupMean, BrandAggregate: grouped aggregates
//
// The pipeline fills a Report; writers in the report package only read it.
// Every type serializes to JSON without loss.
package model
