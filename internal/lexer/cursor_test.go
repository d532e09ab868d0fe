package lexer

import (
	"testing"

	"rawfix/internal/source"
)

func makeCursor(content string) Cursor {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.rs", []byte(content))
	return NewCursor(fs.Get(fileID))
}

func TestCursorPeekAndBump(t *testing.T) {
	c := makeCursor("ab")

	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q, want 'a'", c.Peek())
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if c.PeekAt(1) != 'b' {
		t.Fatalf("PeekAt(1) = %q", c.PeekAt(1))
	}
	if c.PeekAt(2) != 0 {
		t.Fatalf("PeekAt past EOF must be 0")
	}

	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Fatalf("Bump sequence wrong")
	}
	if !c.EOF() {
		t.Fatalf("cursor must be at EOF")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Fatalf("reads at EOF must return 0")
	}
}

func TestCursorEat(t *testing.T) {
	c := makeCursor("#x")

	if !c.Eat('#') {
		t.Fatalf("Eat('#') must succeed")
	}
	if c.Eat('#') {
		t.Fatalf("Eat of a non-matching byte must fail")
	}
	if c.Peek() != 'x' {
		t.Fatalf("failed Eat must not advance")
	}
}

func TestCursorMarkSpanReset(t *testing.T) {
	c := makeCursor("hello")

	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v, want [0,2)", sp)
	}

	c.Reset(m)
	if c.Off != 0 || c.Peek() != 'h' {
		t.Fatalf("Reset must rewind to the mark")
	}
}
