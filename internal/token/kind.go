package token

// Kind represents the category of a source token.
//
// The scanner only needs enough lexical structure to locate string literals
// reliably, so everything that is not a literal, identifier, or comment is
// lumped into Punct.
type Kind uint8

const (
	// Invalid indicates an erroneous token (unterminated literal etc.).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or keyword.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a plain, escape-processing string literal: "...".
	StringLit
	// RawStringLit represents a raw string literal: r"...", r#"..."#, etc.
	RawStringLit
	// CharLit represents a character literal: 'x'.
	CharLit
	// Punct represents any operator or punctuation byte sequence.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case RawStringLit:
		return "RawStringLit"
	case CharLit:
		return "CharLit"
	case Punct:
		return "Punct"
	}
	return "Unknown"
}
