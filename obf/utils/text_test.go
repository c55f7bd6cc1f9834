// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package utils

import (
	"fmt"
	"testing"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		r        rune
		expected string
	}{
		{'\u2800', "U+2800 BRAILLE PATTERN BLANK"},
		{'A', "U+0041 LATIN CAPITAL LETTER A"},
		{'\uFF21', "U+FF21 FULLWIDTH LATIN CAPITAL LETTER A"},
	}
	for _, c := range cases {
		if got := Describe(c.r); got != c.expected {
			t.Errorf("Describe(%U): expected %q, got %q", c.r, c.expected, got)
		}
	}
}

func TestStripMarks(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"A\u0300e\u0301x", "Aex"},
		{"e\u0301\u0327", "e"},
		{"\u0430\u0308", "\u0430"},
		// spacing and enclosing marks are kept
		{"a\u0903b\u20DD", "a\u0903b\u20DD"},
		{"", ""},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case %d: %q", i, c.in), func(t *testing.T) {
			if got := StripMarks(c.in); got != c.out {
				t.Errorf("expected %q, got %q", c.out, got)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"plain text\n", "plain text\n"},
		{"a\u200Ab", "a<U+200A>b"},
		{"W\u2800W", "W<U+2800>W"},
		{"\u0410\uFEFF\u0432", "\u0410<U+FEFF>\u0432"},
		{"\uFF21\u3000", "\uFF21<U+3000>"},
		{"bad\xffbyte", "bad<FF>byte"},
		{"\uFFFD", "\uFFFD"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("case %d: %q", i, c.in), func(t *testing.T) {
			if got := Escape(c.in); got != c.out {
				t.Errorf("expected %q, got %q", c.out, got)
			}
		})
	}
}
