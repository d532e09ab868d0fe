// Package driver orchestrates analysis: it lexes files, collects lexical
// diagnostics, surfaces applicable string-literal assists as fix-carrying
// diagnostics, and caches results per content hash.
package driver

import (
	"fmt"

	"rawfix/internal/assist"
	"rawfix/internal/diag"
	"rawfix/internal/lexer"
	"rawfix/internal/source"
	"rawfix/internal/token"
)

// DefaultMaxDiagnostics caps the bag size when the caller does not.
const DefaultMaxDiagnostics = 100

// Options configures an analysis run.
type Options struct {
	MaxDiagnostics int
	// DisabledAssists lists assist IDs that must not be offered.
	DisabledAssists []string
	// Cache, when set, is consulted before analyzing and updated after.
	Cache *DiskCache
}

func (o *Options) maxDiagnostics() int {
	if o == nil || o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o *Options) disabled() map[string]bool {
	if o == nil || len(o.DisabledAssists) == 0 {
		return nil
	}
	m := make(map[string]bool, len(o.DisabledAssists))
	for _, id := range o.DisabledAssists {
		m[id] = true
	}
	return m
}

// Result holds everything one analysis produced.
type Result struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
	// FromCache is true when the diagnostics were restored from the disk
	// cache instead of being recomputed.
	FromCache bool
}

// Analyze loads the file from disk and analyzes it.
func Analyze(path string, opts *Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("driver: load %s: %w", path, err)
	}
	return analyzeFile(fs, fileID, opts)
}

// AnalyzeBytes analyzes in-memory content under a virtual file name.
func AnalyzeBytes(name string, content []byte, opts *Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return analyzeFile(fs, fileID, opts)
}

func analyzeFile(fs *source.FileSet, fileID source.FileID, opts *Options) (*Result, error) {
	file := fs.Get(fileID)
	result := &Result{
		FileSet: fs,
		FileID:  fileID,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}

	if opts != nil && opts.Cache != nil {
		if payload, ok, err := opts.Cache.Get(file.Hash); err == nil && ok {
			restoreDiagnostics(result.Bag, fileID, payload)
			result.FromCache = true
			return result, nil
		}
	}

	reporter := diag.BagReporter{Bag: result.Bag}
	disabled := opts.disabled()

	for _, tok := range lexer.Tokens(file, lexer.Options{Reporter: reporter}) {
		if !tok.IsString() {
			continue
		}
		reportAssists(reporter, file, tok, disabled)
	}
	result.Bag.Sort()

	if opts != nil && opts.Cache != nil {
		// Cache failures are not analysis failures.
		_ = opts.Cache.Put(file.Hash, snapshotDiagnostics(file.Path, result.Bag))
	}
	return result, nil
}

// reportAssists emits one informational diagnostic per string literal that
// has at least one applicable assist, carrying the assists as fixes.
func reportAssists(reporter diag.Reporter, file *source.File, tok token.Token, disabled map[string]bool) {
	ctx := assist.Context{File: file, Offset: tok.Span.Start}

	var fixes []diag.Fix
	for _, a := range assist.At(ctx) {
		if disabled[a.ID] {
			continue
		}
		fixes = append(fixes, a.Fix)
	}
	if len(fixes) == 0 {
		return
	}

	b := diag.ReportInfo(reporter, diag.RefAssistAvailable, tok.Span,
		fmt.Sprintf("%d string literal assists available", len(fixes)))
	for _, f := range fixes {
		b.WithFixSuggestion(f)
	}
	b.Emit()
}
