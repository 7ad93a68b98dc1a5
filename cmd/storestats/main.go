// Package main provides the entry point for the storestats CLI.
//
// storestats reads an online store product table (CSV, TSV or XLSX) and
// prints a fixed set of sales and rating statistics.
//
// Usage:
//
//	storestats [dataset]
//	storestats query "SELECT brand, SUM(quantity_sold) FROM products GROUP BY brand"
//
// See --help for all available options.
package main

// main is the entry point for storestats.
func main() {
	Execute()
}
