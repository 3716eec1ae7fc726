// Package output provides formatters for fixture check reports.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//   - TAP: Test Anything Protocol format
//
// Each formatter implements the Formatter interface. Formats that
// accumulate results before writing also implement Flushable.
package output
