package fix

import (
	"testing"

	"rawfix/internal/diag"
	"rawfix/internal/source"
)

func TestInsertText(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte("let x = 1"))

	span := source.Span{File: fileID, Start: 0, End: 0}
	f := InsertText("comment out", span, "// ", "")

	if len(f.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(f.Edits))
	}
	if f.Edits[0].NewText != "// " {
		t.Errorf("expected NewText '// ', got %q", f.Edits[0].NewText)
	}
	if f.Kind != diag.FixKindQuickFix {
		t.Errorf("expected QuickFix kind, got %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("expected AlwaysSafe, got %v", f.Applicability)
	}
}

func TestDeleteSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte("let x = 1;"))

	span := source.Span{File: fileID, Start: 9, End: 10}
	f := DeleteSpan("remove semicolon", span, ";")

	if len(f.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(f.Edits))
	}
	edit := f.Edits[0]
	if edit.NewText != "" {
		t.Errorf("expected empty NewText for deletion, got %q", edit.NewText)
	}
	if edit.OldText != ";" {
		t.Errorf("expected OldText ';', got %q", edit.OldText)
	}
}

func TestReplaceSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(`"abc"`))

	span := source.Span{File: fileID, Start: 0, End: 5}
	f := ReplaceSpan("make raw string", span, `r#"abc"#`, `"abc"`)

	if len(f.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(f.Edits))
	}
	edit := f.Edits[0]
	if edit.NewText != `r#"abc"#` {
		t.Errorf("expected raw literal NewText, got %q", edit.NewText)
	}
	if edit.OldText != `"abc"` {
		t.Errorf("expected guard on the old literal, got %q", edit.OldText)
	}
}

func TestWrapWith(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(`r"abc"`))

	// Inner span of the raw literal, just past the leading 'r'.
	span := source.Span{File: fileID, Start: 1, End: 6}
	f := WrapWith("add hash", span, "#", "#")

	if len(f.Edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(f.Edits))
	}
	if !f.Edits[0].Span.Empty() || f.Edits[0].Span.Start != 1 {
		t.Errorf("prefix edit span = %v, want empty at 1", f.Edits[0].Span)
	}
	if !f.Edits[1].Span.Empty() || f.Edits[1].Span.Start != 6 {
		t.Errorf("suffix edit span = %v, want empty at 6", f.Edits[1].Span)
	}
	if f.Kind != diag.FixKindRefactorRewrite {
		t.Errorf("expected RefactorRewrite kind, got %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilitySafeWithHeuristics {
		t.Errorf("expected SafeWithHeuristics, got %v", f.Applicability)
	}
}

func TestOptions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte("x"))
	span := source.Span{File: fileID, Start: 0, End: 0}

	thunk := func(diag.FixBuildContext) ([]diag.TextEdit, error) { return nil, nil }
	f := InsertText("test fix", span, "y", "",
		Preferred(),
		WithID("custom-id"),
		WithKind(diag.FixKindRefactorRewrite),
		WithApplicability(diag.FixApplicabilityManualReview),
		WithThunk(thunk),
		nil, // nil options are tolerated
	)

	if !f.IsPreferred {
		t.Error("expected IsPreferred to be true")
	}
	if f.ID != "custom-id" {
		t.Errorf("expected ID 'custom-id', got %q", f.ID)
	}
	if f.Kind != diag.FixKindRefactorRewrite {
		t.Errorf("expected RefactorRewrite, got %v", f.Kind)
	}
	if f.Applicability != diag.FixApplicabilityManualReview {
		t.Errorf("expected ManualReview, got %v", f.Applicability)
	}
	if f.Thunk == nil {
		t.Error("expected thunk to be attached")
	}
}
