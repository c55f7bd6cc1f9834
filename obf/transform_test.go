// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/txtobf/txtobf/obf/tables"
)

func mustLookup(t *testing.T, id tables.ID) *tables.Table {
	table, err := tables.Lookup(id)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func countRunes(s string, predicate func(rune) bool) (count int) {
	for _, r := range s {
		if predicate(r) {
			count++
		}
	}
	return
}

func TestSubstituteFullwidth(t *testing.T) {
	table := mustLookup(t, tables.Fullwidth)
	rng := rand.New(rand.NewSource(1))

	if got := Substitute("AB 12", table, rng); got != "\uFF21\uFF22\u3000\uFF11\uFF12" {
		t.Errorf("unexpected fullwidth output %q", got)
	}
	// unmapped characters pass through
	if got := Substitute("\u00E9\n\u4E2D", table, rng); got != "\u00E9\n\u4E2D" {
		t.Errorf("unmapped characters were changed: %q", got)
	}
	// so do invalid bytes
	if got := Substitute("a\xffb", table, rng); got != "\uFF41\xff\uFF42" {
		t.Errorf("invalid byte was not passed through: %q", got)
	}
}

func TestSubstituteUsesEveryCandidate(t *testing.T) {
	table := mustLookup(t, tables.Random)
	rng := rand.New(rand.NewSource(7))
	output := Substitute(strings.Repeat("a", 200), table, rng)

	candidates, _ := table.Candidates('a')
	seen := make(map[rune]bool)
	for _, r := range output {
		seen[r] = true
	}
	if len(seen) != len(candidates) {
		t.Errorf("expected all %d candidates to appear in 200 draws, saw %d", len(candidates), len(seen))
	}
	if seen['a'] {
		t.Error("full replacement table must never keep the original")
	}
}

func TestSubstituteReverse(t *testing.T) {
	for i, id := range []tables.ID{tables.Deterministic, tables.Random, tables.Partial, tables.PartialAll, tables.Fullwidth} {
		table := mustLookup(t, id)
		t.Run(fmt.Sprintf("case %d: %s", i, table.Name()), func(t *testing.T) {
			const input = "Pack my box with five dozen liquor jugs; 0123456789: the end."
			rng := rand.New(rand.NewSource(int64(i)))
			obfuscated := Substitute(input, table, rng)
			if table.ID() != tables.Partial && table.ID() != tables.PartialAll && obfuscated == input {
				t.Error("obfuscation had no effect")
			}
			if recovered := Substitute(obfuscated, tables.Invert(table), rng); recovered != input {
				t.Errorf("round trip failed: %q -> %q -> %q", input, obfuscated, recovered)
			}
		})
	}
}

func TestNoiseZeroPercent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	fresh := rand.New(rand.NewSource(3))
	if got := AddNoise("hello world", rng, 0); got != "hello world" {
		t.Errorf("zero percent noise changed the text: %q", got)
	}
	if rng.Int63() != fresh.Int63() {
		t.Error("zero percent noise consumed random draws")
	}
}

func TestNoiseFullPercent(t *testing.T) {
	type noiseTest struct {
		input   string
		markers int
	}
	testCases := []noiseTest{
		{"abc", 2},
		{"ab cd", 2},
		{"a1b", 0},
		{"", 0},
		{"x", 0},
		// the gap rune may be followed by noise, not preceded by it
		{"a\u200Ab", 1},
		// fillers are letters by category but never border noise
		{"a\u3164b\uFFA0c", 0},
		{"Привет", 5},
	}
	for i, tt := range testCases {
		t.Run(fmt.Sprintf("case %d: %q", i, tt.input), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(i)))
			noisy := AddNoise(tt.input, rng, 100)
			if got := countRunes(noisy, IsNoiseMarker); got != tt.markers {
				t.Errorf("expected %d markers, got %d in %q", tt.markers, got, noisy)
			}
			if recovered := RemoveNoise(noisy); recovered != tt.input {
				t.Errorf("RemoveNoise(%q) = %q", noisy, recovered)
			}
		})
	}
}

func TestNoiseAfterGap(t *testing.T) {
	noisy := AddNoise("a\u200Ab", rand.New(rand.NewSource(0)), 100)
	runes := []rune(noisy)
	if len(runes) != 4 || runes[1] != GapRune || !IsNoiseMarker(runes[2]) {
		t.Errorf("marker should follow the gap rune: %q", noisy)
	}
}

func TestNoisePartial(t *testing.T) {
	input := strings.Repeat("abcdefghij", 50)
	noisy := AddNoise(input, rand.New(rand.NewSource(11)), 50)
	markers := countRunes(noisy, IsNoiseMarker)
	boundaries := len(input) - 1
	if markers == 0 || markers == boundaries {
		t.Errorf("50%% noise inserted %d markers at %d boundaries", markers, boundaries)
	}
	if RemoveNoise(noisy) != input {
		t.Error("noise removal did not recover the input")
	}
}

func TestRemoveNoiseUnconditional(t *testing.T) {
	if got := RemoveNoise("\uFEFF1 \u180E2\u200D"); got != "1 2" {
		t.Errorf("markers must be stripped anywhere, got %q", got)
	}
}

func TestAddGaps(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	gapped := AddGaps("ab cd", rng)

	if strings.ContainsRune(gapped, ' ') {
		t.Errorf("plain space survived: %q", gapped)
	}
	if !strings.HasPrefix(gapped, "a\u200Ab") || !strings.HasSuffix(gapped, "c\u200Ad") {
		t.Errorf("hair spaces missing between letters: %q", gapped)
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(gapped, "a\u200Ab"), "c\u200Ad")
	found := false
	for _, alt := range altSpaces {
		if middle == alt {
			found = true
		}
	}
	if !found {
		t.Errorf("space was not replaced by an alternate sequence: %q", middle)
	}
	if got := countRunes(gapped, IsFiller); got != 1 {
		t.Errorf("expected exactly one filler, got %d", got)
	}
}

func TestAddGapsWhitespace(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	// no gap next to other whitespace, and no gap after the last rune
	if got := AddGaps("ab\ncd\t", rng); got != "a\u200Ab\nc\u200Ad\t" {
		t.Errorf("unexpected gaps: %q", got)
	}
	// information separators count as whitespace
	if got := AddGaps("ab\x1Ccd\x1Fe", rng); got != "a\u200Ab\x1Cc\u200Ad\x1Fe" {
		t.Errorf("unexpected gaps around separators: %q", got)
	}
}

func TestGapsRoundTrip(t *testing.T) {
	testCases := []string{
		"",
		" ",
		"a",
		"two  spaces",
		" leading and trailing ",
		"line one\nline two\n",
		"punctuation, too: yes!",
	}
	for i, input := range testCases {
		t.Run(fmt.Sprintf("case %d: %q", i, input), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(i)))
			gapped := AddGaps(input, rng)
			if recovered := RemoveGaps(gapped); recovered != input {
				t.Errorf("RemoveGaps(%q) = %q", gapped, recovered)
			}
		})
	}
}

func TestAltSpaces(t *testing.T) {
	if len(altSpaces) != 8 {
		t.Errorf("expected 8 alternate spaces, got %d", len(altSpaces))
	}
	for _, alt := range altSpaces {
		if got := countRunes(alt, IsFiller); got != 1 {
			t.Errorf("%q should hold exactly one filler", alt)
		}
		if RemoveGaps(alt) != " " {
			t.Errorf("%q should reverse to a single space", alt)
		}
		if len(alt) > maxAltSpaceLen {
			t.Errorf("%q is longer than maxAltSpaceLen", alt)
		}
	}
	for _, marker := range noiseMarkers {
		if utf8.RuneLen(marker) > maxNoiseMarkerLen {
			t.Errorf("%U is longer than maxNoiseMarkerLen", marker)
		}
	}
}
