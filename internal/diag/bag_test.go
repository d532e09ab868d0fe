package diag

import (
	"testing"

	"rawfix/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(LexUnknownChar, span(0, 0, 1), "one")) {
		t.Fatalf("first add must succeed")
	}
	if !bag.Add(NewError(LexUnknownChar, span(0, 1, 2), "two")) {
		t.Fatalf("second add must succeed")
	}
	if bag.Add(NewError(LexUnknownChar, span(0, 2, 3), "three")) {
		t.Fatalf("add past the limit must be dropped")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Fatalf("Cap = %d, want 2", bag.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevInfo, RefAssistAvailable, span(0, 0, 1), "info"))

	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("info-only bag must report no errors or warnings")
	}

	bag.Add(New(SevWarning, LexBadEscape, span(0, 1, 2), "warn"))
	if bag.HasErrors() {
		t.Fatalf("no errors added yet")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warnings")
	}

	bag.Add(NewError(LexUnterminatedString, span(0, 2, 3), "err"))
	if !bag.HasErrors() {
		t.Fatalf("expected errors")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(New(SevInfo, RefAssistAvailable, span(1, 0, 1), "other file"))
	bag.Add(New(SevInfo, RefAssistAvailable, span(0, 5, 9), "later"))
	bag.Add(New(SevWarning, LexBadEscape, span(0, 2, 4), "warn at 2"))
	bag.Add(NewError(LexUnterminatedString, span(0, 2, 4), "err at 2"))

	bag.Sort()
	items := bag.Items()

	wantMsgs := []string{"err at 2", "warn at 2", "later", "other file"}
	for i, want := range wantMsgs {
		if items[i].Message != want {
			t.Fatalf("items[%d] = %q, want %q (order: %v)", i, items[i].Message, want, items)
		}
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(LexUnterminatedString, span(0, 0, 5), "first"))
	bag.Add(NewError(LexUnterminatedString, span(0, 0, 5), "same code and span"))
	bag.Add(NewError(LexUnterminatedString, span(0, 1, 5), "different span"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", bag.Len())
	}
	if bag.Items()[0].Message != "first" {
		t.Fatalf("dedup must keep the first occurrence, got %q", bag.Items()[0].Message)
	}
}

func TestBagMergeRaisesLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(0, 0, 1), "a"))
	b := NewBag(2)
	b.Add(NewError(LexUnknownChar, span(0, 1, 2), "b1"))
	b.Add(NewError(LexUnknownChar, span(0, 2, 3), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len after merge = %d, want 3", a.Len())
	}
}
