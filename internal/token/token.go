package token

import (
	"rawfix/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, RawStringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsString reports whether the token is a plain or raw string literal.
func (t Token) IsString() bool {
	return t.Kind == StringLit || t.Kind == RawStringLit
}
