// Package logging provides the log sink for the logger service.
//
// It supports the following severities:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARNING: Warning conditions
//   - ERROR: Error conditions
//   - CRITICAL: Crashes and unrecoverable conditions
//
// A Sink is constructed explicitly with an output writer and passed to
// the components that log through it; there is no package-level logger.
// Each emitted line is written atomically, so concurrent writers never
// interleave within a line.
package logging
