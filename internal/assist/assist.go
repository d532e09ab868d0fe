// Package assist implements cursor-invoked source transformations over
// string literal tokens: converting between plain and raw string forms and
// adjusting the hash fence of raw strings.
//
// Every assist is evaluated speculatively and returns its applicability as a
// plain boolean. Wrong token kind, no token under the cursor, an
// unterminated literal, or undecodable content all mean "not applicable",
// never an error; hosts probe assists continuously while the user edits.
// An applicable assist carries a ready diag.Fix; applying it is the fix
// engine's job, the assist itself never mutates anything.
package assist

import (
	"rawfix/internal/diag"
	"rawfix/internal/source"
)

// Stable assist identifiers.
const (
	IDMakeRawString   = "make-raw-string"
	IDMakeUsualString = "make-usual-string"
	IDAddHash         = "add-hash"
	IDRemoveHash      = "remove-hash"
)

// Context identifies the invocation point of an assist.
type Context struct {
	File   *source.File
	Offset uint32
}

// Assist is one applicable transformation at a cursor position.
type Assist struct {
	ID     string
	Title  string
	Target source.Span
	Fix    diag.Fix
}

// Provider evaluates one assist. The boolean result is the applicability;
// false carries no further information.
type Provider func(Context) (Assist, bool)

// Entry couples a provider with its stable identity for listings and
// configuration.
type Entry struct {
	ID      string
	Title   string
	Provide Provider
}

// Registry returns all known assists in presentation order.
func Registry() []Entry {
	return []Entry{
		{ID: IDMakeRawString, Title: "make raw string", Provide: MakeRawString},
		{ID: IDMakeUsualString, Title: "make usual string", Provide: MakeUsualString},
		{ID: IDAddHash, Title: "add hash to raw string", Provide: AddHash},
		{ID: IDRemoveHash, Title: "remove hash from raw string", Provide: RemoveHash},
	}
}

// At evaluates every registered assist at the given position and returns the
// applicable ones. Evaluations are independent and side-effect free; the
// caller picks at most one result to apply.
func At(ctx Context) []Assist {
	var out []Assist
	for _, entry := range Registry() {
		if a, ok := entry.Provide(ctx); ok {
			out = append(out, a)
		}
	}
	return out
}

// ByID evaluates only the assist with the given identifier.
func ByID(ctx Context, id string) (Assist, bool) {
	for _, entry := range Registry() {
		if entry.ID == id {
			return entry.Provide(ctx)
		}
	}
	return Assist{}, false
}
