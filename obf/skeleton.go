// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"unicode"
	"unicode/utf8"

	"github.com/ergochat/confusables"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/txtobf/txtobf/obf/utils"
)

const asciiAlnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// asciiBySkeleton groups the ASCII letters and digits by their confusables
// skeleton. Several of them share one: I, l and 1 all map to "l".
var asciiBySkeleton = func() map[string][]rune {
	result := make(map[string][]rune)
	for _, r := range asciiAlnum {
		skeleton := confusables.Skeleton(string(r))
		result[skeleton] = append(result[skeleton], r)
	}
	return result
}()

// pickByCase chooses the member of a skeleton group that best matches the
// case of r: uppercase for uppercase letters, a digit for digits, otherwise
// the first (lowercase-preferred) member.
func pickByCase(r rune, group []rune) rune {
	var want func(rune) bool
	switch {
	case unicode.IsUpper(r):
		want = unicode.IsUpper
	case unicode.IsDigit(r):
		want = unicode.IsDigit
	default:
		want = unicode.IsLower
	}
	for _, c := range group {
		if want(c) {
			return c
		}
	}
	return group[0]
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// FoldLookalike maps a non-ASCII rune to the ASCII letter or digit it
// imitates, if there is one: width variants first, then anything whose
// skeleton (ignoring combining marks) equals the skeleton of an ASCII
// letter or digit. Other runes are returned unchanged.
func FoldLookalike(r rune) rune {
	if r < utf8.RuneSelf || !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		return r
	}
	if folded := []rune(width.Fold.String(string(r))); len(folded) == 1 && isASCIIAlnum(folded[0]) {
		return folded[0]
	}
	skeleton := confusables.Skeleton(string(r))
	if group, ok := asciiBySkeleton[skeleton]; ok {
		return pickByCase(r, group)
	}
	if group, ok := asciiBySkeleton[utils.StripMarks(skeleton)]; ok {
		return pickByCase(r, group)
	}
	return r
}

// SkeletonFolder returns a transform.Transformer applying FoldLookalike to
// every rune. It's a best-effort cleanup for text that was obfuscated with
// a table other than the one used to reverse it.
func SkeletonFolder() transform.Transformer {
	return runes.Map(FoldLookalike)
}
