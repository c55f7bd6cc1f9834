// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"math/rand"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/txtobf/txtobf/obf/tables"
)

// Substituter is a transform.Transformer that replaces every character found
// in a mapping table with one of its candidates, chosen uniformly at random.
// Characters absent from the table, and bytes that aren't valid UTF-8, are
// copied through unchanged. Deterministic tables list a single candidate per
// character, so the choice is forced.
//
// A random draw only happens once the replacement is committed to dst, so
// the output for a given generator state doesn't depend on buffer sizes.
type Substituter struct {
	table *tables.Table
	rng   *rand.Rand
}

// NewSubstituter returns a Substituter for table that draws from rng.
func NewSubstituter(table *tables.Table, rng *rand.Rand) *Substituter {
	return &Substituter{table: table, rng: rng}
}

// Reset implements transform.Transformer. The generator is not rewound.
func (s *Substituter) Reset() {}

// Transform implements transform.Transformer.
func (s *Substituter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}

		candidates, ok := s.table.Candidates(r)
		if !ok || (r == utf8.RuneError && size == 1) {
			if nDst+size > len(dst) {
				err = transform.ErrShortDst
				break
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		if nDst+utf8.UTFMax > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], candidates[s.rng.Intn(len(candidates))])
		nSrc += size
	}
	return
}

// Substitute applies table to s in a single pass.
func Substitute(s string, table *tables.Table, rng *rand.Rand) string {
	result, _, _ := transform.String(NewSubstituter(table, rng), s)
	return result
}
