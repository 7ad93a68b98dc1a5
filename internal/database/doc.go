// Package database provides an in-memory SQLite view of a loaded dataset.
//
// A DB holds a single connection to a private in-memory database (via
// modernc.org/sqlite, which needs no CGO). Import copies a dataset into a
// table: numeric columns become REAL, text columns TEXT, and null cells NULL.
// Query runs ad-hoc SQL against it. Nothing is ever written to disk; the data
// is gone once the DB is closed.
package database
