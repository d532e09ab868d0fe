package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier with a stable string form.
type Code uint16

const (
	// UnknownCode is the catch-all for uncategorised findings.
	UnknownCode Code = 0

	// Lexical range: 1000-1999.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedRawString    Code = 1003
	LexUnterminatedChar         Code = 1004
	LexUnterminatedBlockComment Code = 1005
	LexBadEscape                Code = 1006
	LexBadNumber                Code = 1007
	LexRawStringTooManyHashes   Code = 1008

	// Refactoring range: 2000-2999.
	RefInfo            Code = 2000
	RefAssistAvailable Code = 2001

	// IO range: 4000-4999.
	IOInfo      Code = 4000
	IOReadError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedRawString:    "unterminated raw string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadEscape:                "invalid escape sequence",
	LexBadNumber:                "malformed numeric literal",
	LexRawStringTooManyHashes:   "raw string delimiter too long",
	RefInfo:                     "refactoring note",
	RefAssistAvailable:          "assist available",
	IOInfo:                      "io note",
	IOReadError:                 "cannot read file",
}

// ID returns the stable prefixed identifier, e.g. "LEX1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
