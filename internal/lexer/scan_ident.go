package lexer

import (
	"rawfix/internal/token"
)

// scanIdent consumes an identifier or keyword. Keywords are not
// distinguished: the scanner has no use for them.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: lx.text(sp)}
}

// scanNumber consumes an integer or float literal, including digit
// separators and alphabetic suffixes (0xff, 1_000u32, 1.5e3).
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	isFloat := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_' || isIdentStartByte(b):
			lx.cursor.Bump()
		case b == '.' && isDec(lx.cursor.PeekAt(1)):
			isFloat = true
			lx.cursor.Bump()
		default:
			sp := lx.cursor.SpanFrom(start)
			kind := token.IntLit
			if isFloat {
				kind = token.FloatLit
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	kind := token.IntLit
	if isFloat {
		kind = token.FloatLit
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanPunct consumes a single punctuation or operator byte.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Punct, Span: sp, Text: lx.text(sp)}
}
