package assist

import (
	"strings"

	"rawfix/internal/diag"
	"rawfix/internal/escape"
	"rawfix/internal/fix"
	"rawfix/internal/lexer"
	"rawfix/internal/token"
)

// MakeRawString converts a plain string literal under the cursor into a raw
// one: "a\nb" becomes r#"a<newline>b"#. Applicable only when every escape in
// the literal decodes to a character that can appear literally, since raw
// strings support no escapes at all.
func MakeRawString(ctx Context) (Assist, bool) {
	tok, ok := lexer.TokenOfKindAt(ctx.File, ctx.Offset, token.StringLit)
	if !ok {
		return Assist{}, false
	}
	start, end, ok := quotedRange(tok.Text)
	if !ok {
		return Assist{}, false
	}
	decoded, err := escape.Unescape(tok.Text[start:end])
	if err != nil {
		return Assist{}, false
	}

	hashes := strings.Repeat("#", maxHashStreak(decoded)+1)
	replacement := "r" + hashes + `"` + decoded + `"` + hashes

	return Assist{
		ID:     IDMakeRawString,
		Title:  "make raw string",
		Target: tok.Span,
		Fix: fix.ReplaceSpan("make raw string", tok.Span, replacement, tok.Text,
			fix.WithID(IDMakeRawString),
			fix.WithKind(diag.FixKindRefactorRewrite)),
	}, true
}

// MakeUsualString converts a raw string literal under the cursor into a
// plain one, re-escaping quotes, backslashes, and control characters.
func MakeUsualString(ctx Context) (Assist, bool) {
	tok, ok := lexer.TokenOfKindAt(ctx.File, ctx.Offset, token.RawStringLit)
	if !ok {
		return Assist{}, false
	}
	start, end, ok := quotedRange(tok.Text)
	if !ok {
		return Assist{}, false
	}
	replacement := `"` + escape.Quote(tok.Text[start:end]) + `"`

	return Assist{
		ID:     IDMakeUsualString,
		Title:  "make usual string",
		Target: tok.Span,
		Fix: fix.ReplaceSpan("make usual string", tok.Span, replacement, tok.Text,
			fix.WithID(IDMakeUsualString),
			fix.WithKind(diag.FixKindRefactorRewrite)),
	}, true
}

// AddHash widens the fence of a raw string by one hash on each side. A wider
// fence is never ambiguous, so this is always meaning-preserving.
func AddHash(ctx Context) (Assist, bool) {
	tok, ok := lexer.TokenOfKindAt(ctx.File, ctx.Offset, token.RawStringLit)
	if !ok {
		return Assist{}, false
	}
	// Insert right after the leading 'r' and at the very end of the token.
	inner := tok.Span
	inner.Start++

	return Assist{
		ID:     IDAddHash,
		Title:  "add hash to raw string",
		Target: tok.Span,
		Fix: fix.WrapWith("add hash to raw string", inner, "#", "#",
			fix.WithID(IDAddHash),
			fix.WithApplicability(diag.FixApplicabilityAlwaysSafe)),
	}, true
}

// RemoveHash narrows the fence of a raw string by one hash on each side. Not
// applicable for the bare r"..." form. When the last hash is removed and the
// payload contains literal quotes, the literal cannot stay raw: it switches
// to the plain escaped form instead of becoming mis-delimited.
func RemoveHash(ctx Context) (Assist, bool) {
	tok, ok := lexer.TokenOfKindAt(ctx.File, ctx.Offset, token.RawStringLit)
	if !ok {
		return Assist{}, false
	}
	if strings.HasPrefix(tok.Text, `r"`) {
		// No hash to remove.
		return Assist{}, false
	}

	// Drop the first and last hash: r#...#"payload"#...# -> r...#"payload"#...
	body := tok.Text[2 : len(tok.Text)-1]

	var replacement string
	if strings.HasPrefix(body, `"`) {
		// Fence count was exactly 1. With no fence left, any literal quote
		// in the payload would terminate the string early.
		payload := body[1 : len(body)-1]
		if strings.Contains(payload, `"`) {
			replacement = `"` + escape.Quote(payload) + `"`
		} else {
			replacement = "r" + body
		}
	} else {
		replacement = "r" + body
	}

	return Assist{
		ID:     IDRemoveHash,
		Title:  "remove hash from raw string",
		Target: tok.Span,
		Fix: fix.ReplaceSpan("remove hash from raw string", tok.Span, replacement, tok.Text,
			fix.WithID(IDRemoveHash),
			fix.WithKind(diag.FixKindRefactorRewrite)),
	}, true
}

// quotedRange returns the half-open byte range strictly between the first
// and last quote character of a literal's text. ok is false when the text
// holds fewer than two quotes, which happens for malformed or partial
// literals; no transformation is safe then.
func quotedRange(text string) (start, end int, ok bool) {
	first := strings.IndexByte(text, '"')
	if first < 0 {
		return 0, 0, false
	}
	last := strings.LastIndexByte(text, '"')
	if last == first {
		return 0, 0, false
	}
	return first + 1, last, true
}

// maxHashStreak returns the longest run of '#' characters immediately
// following a '"' anywhere in s, or 0 when no quote-hash pair occurs. A raw
// string fence must be strictly longer than every such run, otherwise the
// closing delimiter would match inside the payload.
func maxHashStreak(s string) int {
	maxStreak := 0
	i := 0
	for {
		idx := strings.Index(s[i:], `"#`)
		if idx < 0 {
			return maxStreak
		}
		j := i + idx + 1
		n := 0
		for j+n < len(s) && s[j+n] == '#' {
			n++
		}
		if n > maxStreak {
			maxStreak = n
		}
		i = j + n
	}
}
