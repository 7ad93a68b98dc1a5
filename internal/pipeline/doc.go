// Package pipeline runs the report analyses over a loaded dataset.
//
// Each report section is implemented as a Step that reads the dataset and
// appends a numbered section to the report. Steps are independent: a step
// whose columns are missing records a skipped section and the pipeline moves
// on. DefaultPipeline builds the standard sequence: overview, average rating,
// most frequent brand, best-selling brand, rating per category, color
// popularity and brand efficiency.
package pipeline
