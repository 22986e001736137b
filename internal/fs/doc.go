// Package fs implements the path inspection and archive engine.
//
// This package is organized into specialized modules:
//   - paths: path classification and name decomposition
//   - metadata: recursive size aggregation and metadata records
//   - filter: include/exclude matching on top-level entry names
//   - archive: filtered tar+gzip compression and safe extraction
//   - transfer: filtered move with cross-device fallback
//
// All operations:
//   - Are self-contained synchronous units of work
//   - Hold no mutable state shared across calls
//   - Write final artifacts via temp-file-then-rename
//   - Report failures through the *Error taxonomy
//
// Existence and type predicates never fail: an absent or unreadable
// path yields false/0/zeroed records rather than an error.
package fs
