// Package core provides the business logic for the score export pipeline.
//
// This package is independent of any CLI concern. The flow is a single
// forward pass:
//
//  1. Read all music documents from the Asphyxia database
//     (internal/asphyxia).
//  2. Filter to the configured profile and convert each surviving document
//     to a Kamaitachi batch-manual score via the embedded lookup tables
//     ([Convert]).
//  3. Wrap the records in the batch-manual envelope and write the output
//     file (internal/export).
//
// [Exporter.Run] is the only entry point. Configuration is passed in
// explicitly; the package holds no mutable globals.
//
// # Error Handling
//
// Run-fatal errors are mapped to user-facing messages with support codes
// by [MapError]:
//
//   - FILE001-FILE003: database errors (missing, malformed, locked)
//   - OUT001: output file errors
//
// A row with an unknown clear or difficulty code is not fatal: it is
// skipped with a logged warning and counted in [Result.SkippedUnmapped].
package core
