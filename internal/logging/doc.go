// Package logging assembles structured slog loggers and formatting helpers used
// across mkvedit.
//
// It owns the console and JSON handlers, level parsing and output plumbing, and
// exposes context helpers that tag every line of one interactive run with its
// session ID. The console handler promotes the component and session into the
// line prefix so a shared log file stays readable.
//
// Logging is diagnostic only: everything the user must see goes through the
// prompt output, never through the logger.
package logging
