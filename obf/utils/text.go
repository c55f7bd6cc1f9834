// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/runenames"
)

// Describe returns a code point label such as "U+2800 BRAILLE PATTERN BLANK".
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("U+%04X %s", r, name)
}

var markRemover = runes.Remove(runes.In(unicode.Mn))

// StripMarks removes nonspacing combining marks.
func StripMarks(s string) string {
	result, _, _ := transform.String(markRemover, s)
	return result
}

// Escape makes obfuscated text inspectable on a terminal: every character
// outside printable ASCII that is invisible, space-like, or not graphic is
// rendered as <U+XXXX>. Newlines and tabs are kept.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for i, r := range s {
		switch {
		case r == utf8.RuneError && !strings.HasPrefix(s[i:], string(utf8.RuneError)):
			fmt.Fprintf(&buf, "<%02X>", s[i])
		case r == '\n' || r == '\t' || (r < utf8.RuneSelf && unicode.IsPrint(r)):
			buf.WriteRune(r)
		case r >= utf8.RuneSelf && unicode.IsGraphic(r) && !unicode.IsSpace(r) && !isBlank(r):
			buf.WriteRune(r)
		default:
			fmt.Fprintf(&buf, "<U+%04X>", r)
		}
	}
	return buf.String()
}

// characters that render as nothing but are classified as graphic
func isBlank(r rune) bool {
	switch r {
	case '\u2800', '\u3164', '\uFFA0', '\u115F', '\u1160':
		return true
	}
	return false
}
