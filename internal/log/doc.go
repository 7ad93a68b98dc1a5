// Package log builds the slog loggers used by storestats.
//
// Loggers write to the given writer (stderr in the CLI) so that log lines
// never mix with a report written to stdout. The level is Warn by default
// and Debug in verbose mode.
//
// Every logger wraps its handler in a CompactHandler, which shortens long
// string attributes such as SQL text or raw cell values:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("running query", "sql", query) // long queries are cut
//	slog.SetDefault(logger)
package log
