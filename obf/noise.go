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

// zero-width markers inserted between letters
var noiseMarkers = []rune{
	'\uFEFF', // ZERO WIDTH NO-BREAK SPACE
	'\u180E', // MONGOLIAN VOWEL SEPARATOR
	'\u200D', // ZERO WIDTH JOINER
}

const maxNoiseMarkerLen = 3

// IsNoiseMarker reports whether r is one of the zero-width noise markers.
func IsNoiseMarker(r rune) bool {
	for _, marker := range noiseMarkers {
		if r == marker {
			return true
		}
	}
	return false
}

// isNoiseLetter is a letter that may border a noise marker.
func isNoiseLetter(r rune) bool {
	return unicode.IsLetter(r) && !fillers[r]
}

// NoiseAdder is a transform.Transformer that inserts a zero-width marker
// between two adjacent letters with probability percent/100. A marker may
// also follow the gap rune when a letter comes next, so gapped words still
// receive noise.
type NoiseAdder struct {
	rng     *rand.Rand
	percent int
}

// NewNoiseAdder returns a NoiseAdder; percent must be in [0, 100].
func NewNoiseAdder(rng *rand.Rand, percent int) *NoiseAdder {
	return &NoiseAdder{rng: rng, percent: percent}
}

// Reset implements transform.Transformer.
func (n *NoiseAdder) Reset() {}

// Transform implements transform.Transformer.
func (n *NoiseAdder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}

		eligible := false
		if n.percent > 0 && (isNoiseLetter(r) || r == GapRune) {
			next, ok, short := peekRune(src, nSrc+size, atEOF)
			if short {
				err = transform.ErrShortSrc
				break
			}
			eligible = ok && isNoiseLetter(next)
		}

		needed := size
		if eligible {
			needed += maxNoiseMarkerLen
		}
		if nDst+needed > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
		if eligible && n.rng.Intn(100) < n.percent {
			nDst += utf8.EncodeRune(dst[nDst:], noiseMarkers[n.rng.Intn(len(noiseMarkers))])
		}
	}
	return
}

// NoiseRemover returns a transform.Transformer that deletes every noise
// marker, wherever it occurs.
func NoiseRemover() transform.Transformer {
	return runes.Remove(runes.Predicate(IsNoiseMarker))
}

// AddNoise applies NoiseAdder to s.
func AddNoise(s string, rng *rand.Rand, percent int) string {
	if percent <= 0 {
		return s
	}
	result, _, _ := transform.String(NewNoiseAdder(rng, percent), s)
	return result
}

// RemoveNoise applies NoiseRemover to s.
func RemoveNoise(s string) string {
	result, _, _ := transform.String(NoiseRemover(), s)
	return result
}
