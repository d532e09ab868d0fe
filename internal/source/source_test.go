package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSpan(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}

	if s.Empty() {
		t.Fatalf("span %v should not be empty", s)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}
	if !s.Contains(3) || !s.Contains(6) {
		t.Fatalf("span must contain its start and last byte")
	}
	if s.Contains(7) {
		t.Fatalf("span end is exclusive")
	}

	cov := s.Cover(Span{File: 0, Start: 1, End: 9})
	if cov.Start != 1 || cov.End != 9 {
		t.Fatalf("Cover = %v, want [1,9)", cov)
	}
	if got := s.Cover(Span{File: 1, Start: 0, End: 100}); got != s {
		t.Fatalf("Cover across files must be a no-op, got %v", got)
	}

	ins := s.Collapse(5)
	if !ins.Empty() || ins.Start != 5 || ins.File != s.File {
		t.Fatalf("Collapse(5) = %v", ins)
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncd\n\nef")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself still belongs to line 1
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1}, // empty line
		{7, 4, 1},
		{8, 4, 2},
		{9, 4, 3}, // one past the end, end-of-span resolution
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Fatalf("toLineCol(%d) = %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}

	if got := toLineCol(nil, 5); got.Line != 1 || got.Col != 6 {
		t.Fatalf("toLineCol without newlines = %d:%d, want 1:6", got.Line, got.Col)
	}
}

func TestFileSetAdd(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.rs", []byte("one\ntwo"))
	file := fs.Get(id)
	if file == nil {
		t.Fatalf("Get returned nil for fresh id")
	}
	if file.Flags&FileVirtual == 0 {
		t.Fatalf("virtual file missing FileVirtual flag")
	}
	if len(file.LineIdx) != 1 || file.LineIdx[0] != 3 {
		t.Fatalf("LineIdx = %v, want [3]", file.LineIdx)
	}

	// Re-adding the same path versions it; the index tracks the latest.
	id2 := fs.AddVirtual("a.rs", []byte("changed"))
	if id2 == id {
		t.Fatalf("re-add must produce a fresh id")
	}
	latest, ok := fs.GetLatest("a.rs")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %v, %v; want %v", latest, ok, id2)
	}
	if fs.Len() != 2 {
		t.Fatalf("Len = %d, want 2", fs.Len())
	}

	if fs.Get(FileID(99)) != nil {
		t.Fatalf("Get out of range must return nil")
	}

	if fs.Get(id).Hash == fs.Get(id2).Hash {
		t.Fatalf("different content must hash differently")
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.rs")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\rc")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)

	if string(file.Content) != "a\nb\rc" {
		t.Fatalf("content = %q, want %q", file.Content, "a\nb\rc")
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %v, want BOM and CRLF recorded", file.Flags)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.rs")); err == nil {
		t.Fatalf("Load of a missing file must fail")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rs", []byte("first\nsecond"))

	start, end := fs.Resolve(Span{File: id, Start: 6, End: 12})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 7 {
		t.Fatalf("end = %d:%d, want 2:7", end.Line, end.Col)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.rs", []byte("one\ntwo\nthree"))
	file := fs.Get(id)

	tests := []struct {
		n    uint32
		want string
	}{
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.n); got != tt.want {
			t.Fatalf("GetLine(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPath(t *testing.T) {
	file := &File{Path: "pkg/deep/name.rs"}

	if got := file.FormatPath("basename", ""); got != "name.rs" {
		t.Fatalf("basename = %q", got)
	}
	if got := file.FormatPath("auto", ""); got != "pkg/deep/name.rs" {
		t.Fatalf("auto on a short relative path = %q", got)
	}
	if got := file.FormatPath("relative", "pkg"); got != "deep/name.rs" {
		t.Fatalf("relative = %q", got)
	}
}
