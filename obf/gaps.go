// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"math/rand"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	// GapRune is inserted between the characters of a word; HAIR SPACE is
	// about 100 units wide against 260 for SPACE.
	GapRune = '\u200A'

	plainSpace = ' '
)

// alternate spellings of a plain space, each a filler plus hair spaces
var altSpaces = []string{
	"\u2800\u200A\u200A", // BRAILLE PATTERN BLANK + 2 HAIR SPACE
	"\u200A\u2800\u200A",
	"\u200A\u200A\u2800",
	"\uFFA0\u200A\u200A", // HALFWIDTH HANGUL FILLER + 2 HAIR SPACE
	"\u200A\uFFA0\u200A",
	"\u200A\u200A\uFFA0",
	"\u200A\u3164", // HAIR SPACE + HANGUL FILLER
	"\u3164\u200A",
}

// fillers are the blank-looking characters used in altSpaces. Two of them
// are letters by Unicode category, so noise insertion must skip them too.
var fillers = map[rune]bool{
	'\u2800': true, // BRAILLE PATTERN BLANK
	'\uFFA0': true, // HALFWIDTH HANGUL FILLER
	'\u3164': true, // HANGUL FILLER
}

var maxAltSpaceLen = func() (result int) {
	for _, alt := range altSpaces {
		if len(alt) > result {
			result = len(alt)
		}
	}
	return
}()

// IsFiller reports whether r is one of the blank fillers used to disguise
// spaces.
func IsFiller(r rune) bool {
	return fillers[r]
}

// peekRune decodes the rune starting at src[i]. ok is false if there is no
// rune there; short is true if the answer depends on input not yet seen.
func peekRune(src []byte, i int, atEOF bool) (r rune, ok, short bool) {
	if i >= len(src) {
		return 0, false, !atEOF
	}
	if !atEOF && !utf8.FullRune(src[i:]) {
		return 0, false, true
	}
	r, _ = utf8.DecodeRune(src[i:])
	return r, true, false
}

// isSpace also counts the information separators U+001C through U+001F,
// which unicode.IsSpace does not.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1C' <= r && r <= '\x1F')
}

// GapAdder is a transform.Transformer that disguises spacing. Every plain
// space becomes one of the alternate space sequences, chosen uniformly at
// random, and a HAIR SPACE is inserted between any two adjacent characters
// that are both non-whitespace.
type GapAdder struct {
	rng *rand.Rand
}

// NewGapAdder returns a GapAdder that draws from rng.
func NewGapAdder(rng *rand.Rand) *GapAdder {
	return &GapAdder{rng: rng}
}

// Reset implements transform.Transformer.
func (g *GapAdder) Reset() {}

// Transform implements transform.Transformer.
func (g *GapAdder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}

		if r == plainSpace {
			if nDst+maxAltSpaceLen > len(dst) {
				err = transform.ErrShortDst
				break
			}
			nDst += copy(dst[nDst:], altSpaces[g.rng.Intn(len(altSpaces))])
			nSrc += size
			continue
		}

		gap := false
		if !isSpace(r) {
			next, ok, short := peekRune(src, nSrc+size, atEOF)
			if short {
				err = transform.ErrShortSrc
				break
			}
			gap = ok && !isSpace(next)
		}

		needed := size
		if gap {
			needed += utf8.RuneLen(GapRune)
		}
		if nDst+needed > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		if gap {
			nDst += utf8.EncodeRune(dst[nDst:], GapRune)
		}
	}
	return
}

// GapRemover returns a transform.Transformer undoing GapAdder: every filler
// becomes a plain space and every HAIR SPACE is dropped. Which alternate
// sequence was used is not recoverable, only that there was a space.
func GapRemover() transform.Transformer {
	return transform.Chain(
		runes.Map(func(r rune) rune {
			if fillers[r] {
				return plainSpace
			}
			return r
		}),
		runes.Remove(runes.Predicate(func(r rune) bool {
			return r == GapRune
		})),
	)
}

// AddGaps applies GapAdder to s.
func AddGaps(s string, rng *rand.Rand) string {
	result, _, _ := transform.String(NewGapAdder(rng), s)
	return result
}

// RemoveGaps applies GapRemover to s.
func RemoveGaps(s string) string {
	result, _, _ := transform.String(GapRemover(), s)
	return result
}
