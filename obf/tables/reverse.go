// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package tables

import (
	"unicode/utf8"
)

// Invert builds the reverse table of t: every candidate becomes a source
// whose only candidate is the character it replaced. Substituting with the
// reverse table undoes substitution with t.
//
// Entries are visited in table order, so if two sources share a candidate
// the later source wins. Check rejects such tables, so this only matters for
// tables compiled from unchecked entries.
func Invert(t *Table) *Table {
	inverse := &Table{
		id:          t.id,
		name:        t.name,
		description: t.description,
		reversed:    !t.reversed,
		index:       make(map[rune][]rune),
	}
	for _, entry := range t.entries {
		source, _ := utf8.DecodeRuneInString(entry.Source)
		for _, candidate := range entry.Candidates {
			if _, seen := inverse.index[candidate]; !seen {
				inverse.sources = append(inverse.sources, candidate)
			}
			inverse.index[candidate] = []rune{source}
		}
	}
	inverse.entries = make([]Entry, len(inverse.sources))
	for i, candidate := range inverse.sources {
		inverse.entries[i] = Entry{
			Source:     string(candidate),
			Candidates: string(inverse.index[candidate]),
		}
	}
	return inverse
}

// Collision is a candidate shared by more than one source character.
type Collision struct {
	Candidate rune
	Sources   []string
}

// Collisions lists every candidate that more than one source maps to, in
// the order the candidates first appear.
func Collisions(entries []Entry) (result []Collision) {
	owners := make(map[rune][]string)
	var order []rune
	for _, entry := range entries {
		seen := make(map[rune]bool)
		for _, candidate := range entry.Candidates {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			if _, ok := owners[candidate]; !ok {
				order = append(order, candidate)
			}
			owners[candidate] = append(owners[candidate], entry.Source)
		}
	}
	for _, candidate := range order {
		if sources := owners[candidate]; len(sources) > 1 {
			result = append(result, Collision{Candidate: candidate, Sources: sources})
		}
	}
	return
}
