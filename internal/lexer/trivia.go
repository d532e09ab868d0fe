package lexer

import (
	"rawfix/internal/diag"
	"rawfix/internal/token"
)

// collectLeadingTrivia consumes whitespace and comments into lx.hold until a
// significant token or EOF is reached.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			lx.scanTriviaRun(token.TriviaSpace, func(c byte) bool {
				return c == ' ' || c == '\t' || c == '\r'
			})
		case b == '\n':
			lx.scanTriviaRun(token.TriviaNewline, func(c byte) bool {
				return c == '\n'
			})
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				lx.scanLineComment()
			case '*':
				lx.scanBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanTriviaRun(kind token.TriviaKind, match func(byte) bool) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && match(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) scanLineComment() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
}

// scanBlockComment consumes a possibly nested /* ... */ comment.
func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '/' && b1 == '*':
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
		case ok && b0 == '*' && b1 == '/':
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaBlockComment, Span: sp, Text: lx.text(sp)})
}
