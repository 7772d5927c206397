// Package logging provides structured logging utilities for recipegen.
//
// # Overview
//
// This package wraps the standard library slog package with recipegen
// defaults: JSON records on stderr, module and version attributes on every
// record, and source locations at debug level. Human-readable progress lines
// printed by the CLI go to stdout and are not routed through slog.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-record generation details, with source location
//   - INFO: category progress and output targets (default)
//   - WARN/WARNING: fallbacks such as an unknown serializer format
//   - ERROR: failures that abort the run
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("recipegen", "v1.0.0")
//	    slog.Info("generating corpus", "recipes", 1000)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("recipegen", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is passed:
//
//	LOG_LEVEL=debug recipegen generate --count salad=3
package logging
