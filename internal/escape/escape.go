// Package escape decodes and encodes the backslash-escape grammar of plain
// string literals: \n \r \t \0 \\ \' \", \xNN byte escapes, \u{...} unicode
// escapes, and line continuations.
package escape

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEscape covers every malformed or unrepresentable escape
// sequence. Decoding is all-or-nothing: a payload that trips this error has
// no usable partial result.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// Unescape decodes every escape sequence in s into its literal character.
// It returns an error wrapping ErrInvalidEscape as soon as any sequence is
// malformed; the output of a failed decode must not be used.
func Unescape(s string) (string, error) {
	// Fast path: nothing to decode.
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		b := s[i]
		if b != '\\' {
			out.WriteByte(b)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("%w: lone backslash at end of input", ErrInvalidEscape)
		}
		switch c := s[i+1]; c {
		case 'n':
			out.WriteByte('\n')
			i += 2
		case 'r':
			out.WriteByte('\r')
			i += 2
		case 't':
			out.WriteByte('\t')
			i += 2
		case '0':
			out.WriteByte(0)
			i += 2
		case '\\':
			out.WriteByte('\\')
			i += 2
		case '\'':
			out.WriteByte('\'')
			i += 2
		case '"':
			out.WriteByte('"')
			i += 2
		case 'x':
			n, err := decodeHexByte(s[i:])
			if err != nil {
				return "", err
			}
			out.WriteByte(n)
			i += 4
		case 'u':
			r, width, err := decodeUnicode(s[i:])
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i += width
		case '\n':
			// Line continuation: the backslash, the newline, and any
			// following leading whitespace all vanish.
			i += 2
			for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
				i++
			}
		default:
			return "", fmt.Errorf("%w: \\%c", ErrInvalidEscape, c)
		}
	}
	return out.String(), nil
}

// decodeHexByte parses a \xNN escape at the start of s. The value must fit
// in ASCII: larger bytes would not survive a round trip through literal text.
func decodeHexByte(s string) (byte, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("%w: truncated \\x escape", ErrInvalidEscape)
	}
	hi, ok1 := hexDigit(s[2])
	lo, ok2 := hexDigit(s[3])
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("%w: \\x%c%c", ErrInvalidEscape, s[2], s[3])
	}
	v := hi<<4 | lo
	if v > 0x7F {
		return 0, fmt.Errorf("%w: \\x%c%c is out of ASCII range", ErrInvalidEscape, s[2], s[3])
	}
	return byte(v), nil
}

// decodeUnicode parses a \u{H...} escape (1 to 6 hex digits) at the start of
// s and returns the rune plus the byte width of the whole escape.
func decodeUnicode(s string) (rune, int, error) {
	if len(s) < 3 || s[2] != '{' {
		return 0, 0, fmt.Errorf("%w: \\u must be followed by {", ErrInvalidEscape)
	}
	v := 0
	digits := 0
	i := 3
	for i < len(s) && s[i] != '}' {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, 0, fmt.Errorf("%w: bad digit %q in \\u escape", ErrInvalidEscape, s[i])
		}
		v = v<<4 | d
		digits++
		if digits > 6 {
			return 0, 0, fmt.Errorf("%w: \\u escape longer than 6 digits", ErrInvalidEscape)
		}
		i++
	}
	if i >= len(s) {
		return 0, 0, fmt.Errorf("%w: unclosed \\u escape", ErrInvalidEscape)
	}
	if digits == 0 {
		return 0, 0, fmt.Errorf("%w: empty \\u escape", ErrInvalidEscape)
	}
	if v > utf8.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, 0, fmt.Errorf("%w: \\u{%x} is not a unicode scalar", ErrInvalidEscape, v)
	}
	return rune(v), i + 1, nil
}

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// Quote re-encodes literal text for a plain string body: quotes, backslashes,
// and control characters become escapes, everything else stays as-is.
// Non-ASCII text is kept literal so edits stay byte-faithful for readable
// content.
func Quote(s string) string {
	// Fast path: nothing needs escaping.
	if !strings.ContainsAny(s, "\"\\") && !hasControl(s) {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == '"':
			out.WriteString(`\"`)
		case b == '\\':
			out.WriteString(`\\`)
		case b == '\n':
			out.WriteString(`\n`)
		case b == '\r':
			out.WriteString(`\r`)
		case b == '\t':
			out.WriteString(`\t`)
		case b == 0:
			out.WriteString(`\0`)
		case b < 0x20 || b == 0x7F:
			fmt.Fprintf(&out, `\x%02x`, b)
		default:
			out.WriteByte(b)
		}
	}
	return out.String()
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return true
		}
	}
	return false
}
