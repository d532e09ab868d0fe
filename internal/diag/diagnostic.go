package diag

import (
	"fmt"

	"rawfix/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit describes one text replacement in source coordinates. A
// zero-length span is a pure insertion. OldText, when non-empty, acts as a
// guard: the fix engine refuses to apply the edit if the covered bytes differ.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind coarsely classifies a fix for UI grouping.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	}
	return "unknown"
}

// FixApplicability states how much review an automated fix needs.
type FixApplicability uint8

const (
	FixApplicabilityAlwaysSafe FixApplicability = iota
	FixApplicabilitySafeWithHeuristics
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// FixBuildContext carries what lazy fix builders may need.
type FixBuildContext struct {
	FileSet *source.FileSet
}

// FixThunk lazily produces edits when they are expensive to compute up front.
type FixThunk func(ctx FixBuildContext) ([]TextEdit, error)

// Fix represents a possible automated correction. Fixes are data-only; the
// engine in internal/fix decides whether and how to apply them.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
	Thunk         FixThunk
}

// Resolve returns the fix with edits materialized. Fixes without a thunk are
// returned unchanged.
func (f Fix) Resolve(ctx FixBuildContext) (Fix, error) {
	if f.Thunk == nil {
		return f, nil
	}
	edits, err := f.Thunk(ctx)
	if err != nil {
		return f, fmt.Errorf("build fix %q: %w", f.Title, err)
	}
	f.Edits = edits
	f.Thunk = nil
	return f, nil
}

// MaterializeFixes resolves every fix in order, expanding thunks. The first
// build failure aborts the whole batch: partially built fix sets are never
// offered for application.
func MaterializeFixes(ctx FixBuildContext, fixes []Fix) ([]Fix, error) {
	if len(fixes) == 0 {
		return nil, nil
	}
	out := make([]Fix, 0, len(fixes))
	for _, f := range fixes {
		resolved, err := f.Resolve(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// Diagnostic is the central finding record shared by all phases.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
