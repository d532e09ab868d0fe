// Package diag defines the diagnostic model shared by the lexer, the assist
// engine, and the CLI.
//
// Diagnostic is the central record: severity, a stable numeric Code, a
// message, the primary source.Span, optional Notes, and optional Fixes.
//
// Fix models a possible automated correction as data only: a stable ID, a
// title for UI listings, a FixKind classification, a FixApplicability
// confidence level, and concrete TextEdits. Edits may instead be produced
// lazily through a FixThunk; MaterializeFixes expands thunks before the fix
// engine or a formatter consumes them.
//
// TextEdit spans use source byte coordinates. OldText is an optional guard
// the fix engine checks against the current buffer before applying an edit.
//
// Producers emit through a Reporter (typically BagReporter into a Bag, which
// supports sorting, deduplication, and merging) or build richer records with
// ReportBuilder. The package performs no formatting or IO: rendering lives in
// internal/diagfmt, application of fixes in internal/fix.
package diag
