// Package analysis implements the computations behind the report sections.
//
// Every function is pure: it reads dataset columns and returns model values.
// Rows whose group key is null are ignored by grouped aggregates, null values
// add nothing to sums, and every ranking is returned in descending order with
// ties broken by key in ascending byte order.
package analysis
