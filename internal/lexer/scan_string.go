package lexer

import (
	"rawfix/internal/diag"
	"rawfix/internal/token"
)

// maxRawStringHashes bounds the fence length the scanner accepts, matching
// the 255-hash limit of the literal grammar.
const maxRawStringHashes = 255

// scanString consumes a plain "..." literal. Escape pairs are skipped as a
// unit so an escaped quote never terminates the literal; deep validation of
// escapes is left to the consumer. Newlines are allowed inside the literal.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// isRawStringStart reports whether the cursor sits on `r` beginning a raw
// string literal: r", r#", r##", and so on.
func (lx *Lexer) isRawStringStart() bool {
	n := uint32(1)
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}
	return lx.cursor.PeekAt(n) == '"'
}

// scanRawString consumes r<N#>"..."<N#>. The literal ends at the first `"`
// followed by at least N hashes; exactly N of them belong to the closer.
func (lx *Lexer) scanRawString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'r'

	fence := 0
	for lx.cursor.Eat('#') {
		fence++
	}
	if fence > maxRawStringHashes {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexRawStringTooManyHashes, sp, "raw string delimiter exceeds 255 hashes")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	lx.cursor.Bump() // opening '"', guaranteed by isRawStringStart

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		// Count hashes after the quote without committing past the closer.
		n := 0
		for n < fence && lx.cursor.PeekAt(uint32(n)) == '#' {
			n++
		}
		if n == fence {
			for i := 0; i < fence; i++ {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RawStringLit, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedRawString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// isCharLiteralStart distinguishes 'x' and '\n' char literals from lifetime
// markers such as 'a in generic position: a char literal closes with a quote
// right after one character or escape.
func (lx *Lexer) isCharLiteralStart() bool {
	if lx.cursor.PeekAt(1) == '\\' {
		return true
	}
	// 'x' — any byte followed by a closing quote. Multi-byte runes are
	// scanned greedily by scanChar; here a 4-byte window is enough.
	for n := uint32(2); n <= 5; n++ {
		b := lx.cursor.PeekAt(n)
		if b == '\'' {
			return true
		}
		if b < utf8RuneSelf {
			return false
		}
	}
	return false
}

// scanChar consumes a character literal, including escaped forms.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
