// Package logging assembles the structured slog loggers used by the CLI and
// the extraction and folder packages.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// standard field names (component, correlation_id, event_type, error_hint,
// impact). Console output goes to stderr so tables and JSON on stdout stay
// clean. A no-op logger is available for tests and library callers that do
// not care about diagnostics.
package logging
