package lexer

import (
	"rawfix/internal/source"
	"rawfix/internal/token"
)

// TokenAt lexes the file and returns the token whose span contains the byte
// offset. The end position is treated as inclusive so a cursor sitting right
// after a literal's closing delimiter still hits it. Diagnostics produced
// while scanning are dropped: location queries are speculative.
//
// The second result is false when no token covers the offset.
func TokenAt(file *source.File, offset uint32) (token.Token, bool) {
	lx := New(file, Options{})
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return token.Token{}, false
		}
		if tok.Span.Contains(offset) || offset == tok.Span.End {
			return tok, true
		}
		if tok.Span.Start > offset {
			// Offset fell into trivia between tokens.
			return token.Token{}, false
		}
	}
}

// TokenOfKindAt returns the token of the wanted kind touching the offset.
// Both boundary positions count as touching, so when two tokens share the
// offset the one with the right kind wins.
func TokenOfKindAt(file *source.File, offset uint32, kind token.Kind) (token.Token, bool) {
	lx := New(file, Options{})
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return token.Token{}, false
		}
		if tok.Span.Start > offset {
			return token.Token{}, false
		}
		if tok.Kind == kind && (tok.Span.Contains(offset) || offset == tok.Span.End) {
			return tok, true
		}
	}
}
