// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package tables

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ergochat/confusables"
	"golang.org/x/text/width"

	"github.com/txtobf/txtobf/obf/utils"
)

// Severity tells whether a Problem makes a table unusable.
type Severity int

const (
	// SeverityWarning marks advisory findings; Check ignores them.
	SeverityWarning Severity = iota
	// SeverityError marks structural defects; Check rejects the table.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// ProblemKind classifies a validation finding.
type ProblemKind int

const (
	// ProblemInvalidSource: the source is not exactly one valid character.
	ProblemInvalidSource ProblemKind = iota
	// ProblemEmptyCandidates: the candidate set has no members.
	ProblemEmptyCandidates
	// ProblemMalformedCandidates: the candidates don't decode into whole characters.
	ProblemMalformedCandidates
	// ProblemDuplicateCandidate: a character appears twice in one candidate set.
	ProblemDuplicateCandidate
	// ProblemDuplicateSource: the same source character has two entries.
	ProblemDuplicateSource
	// ProblemCollision: two source characters share a candidate, so the
	// reverse table could not tell them apart.
	ProblemCollision
	// ProblemNotConfusable: a candidate doesn't look like its source.
	ProblemNotConfusable
)

var problemKindNames = map[ProblemKind]string{
	ProblemInvalidSource:       "invalid source",
	ProblemEmptyCandidates:     "empty candidate set",
	ProblemMalformedCandidates: "malformed candidates",
	ProblemDuplicateCandidate:  "duplicate candidate",
	ProblemDuplicateSource:     "duplicate source",
	ProblemCollision:           "candidate collision",
	ProblemNotConfusable:       "not confusable",
}

func (k ProblemKind) String() string {
	return problemKindNames[k]
}

// Problem is a single validation finding.
type Problem struct {
	Kind      ProblemKind
	Severity  Severity
	Source    string
	Candidate rune
	Detail    string
}

func (p Problem) String() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s: %s: source %q", p.Severity, p.Kind, p.Source)
	if p.Candidate != 0 {
		fmt.Fprintf(&buf, ", candidate %s", utils.Describe(p.Candidate))
	}
	if p.Detail != "" {
		buf.WriteString(": ")
		buf.WriteString(p.Detail)
	}
	return buf.String()
}

// ValidationError is returned by Check when a table has structural defects.
type ValidationError struct {
	Table    string
	Problems []Problem
}

func (err *ValidationError) Error() string {
	descriptions := make([]string, len(err.Problems))
	for i, problem := range err.Problems {
		descriptions[i] = problem.String()
	}
	return fmt.Sprintf("Mapping table %s is invalid (%d problems): %s", err.Table, len(err.Problems), strings.Join(descriptions, "; "))
}

// Check strictly validates a table, failing on any error-severity problem.
func Check(name string, entries []Entry) error {
	problems := structuralProblems(entries)
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Table: name, Problems: problems}
}

// Diagnose reports every problem found in a table without failing: the
// structural defects that Check rejects, plus advisory warnings about
// candidates that don't resemble their source. It's meant for authoring
// new tables.
func Diagnose(entries []Entry) []Problem {
	return append(structuralProblems(entries), lookalikeProblems(entries)...)
}

// Diagnose runs Diagnose over a compiled table.
func (t *Table) Diagnose() []Problem {
	return Diagnose(t.entries)
}

func structuralProblems(entries []Entry) (problems []Problem) {
	fail := func(kind ProblemKind, source string, candidate rune, detail string) {
		problems = append(problems, Problem{Kind: kind, Severity: SeverityError, Source: source, Candidate: candidate, Detail: detail})
	}

	sourceSeen := make(map[rune]bool)
	owners := make(map[rune]string)
	for _, entry := range entries {
		if !utf8.ValidString(entry.Source) || utf8.RuneCountInString(entry.Source) != 1 {
			fail(ProblemInvalidSource, entry.Source, 0, fmt.Sprintf("expected exactly one character, got %d bytes", len(entry.Source)))
			continue
		}
		source, _ := utf8.DecodeRuneInString(entry.Source)
		if sourceSeen[source] {
			fail(ProblemDuplicateSource, entry.Source, 0, "")
			continue
		}
		sourceSeen[source] = true

		if entry.Candidates == "" {
			fail(ProblemEmptyCandidates, entry.Source, 0, "")
			continue
		}
		if !utf8.ValidString(entry.Candidates) {
			fail(ProblemMalformedCandidates, entry.Source, 0, fmt.Sprintf("%q is not valid UTF-8", entry.Candidates))
			continue
		}

		inSet := make(map[rune]bool)
		for _, candidate := range entry.Candidates {
			if inSet[candidate] {
				fail(ProblemDuplicateCandidate, entry.Source, candidate, "")
				continue
			}
			inSet[candidate] = true
			if owner, taken := owners[candidate]; taken {
				fail(ProblemCollision, entry.Source, candidate, fmt.Sprintf("also a candidate of %q", owner))
				continue
			}
			owners[candidate] = entry.Source
		}
	}
	return
}

// lookalikeProblems flags candidates whose TR39 skeleton differs from the
// skeleton of their source. Width variants count as look-alikes, and
// whitespace or invisible sources are exempt since they have no glyph to
// compare.
func lookalikeProblems(entries []Entry) (problems []Problem) {
	for _, entry := range entries {
		if !utf8.ValidString(entry.Source) || utf8.RuneCountInString(entry.Source) != 1 || !utf8.ValidString(entry.Candidates) {
			continue
		}
		source, _ := utf8.DecodeRuneInString(entry.Source)
		if unicode.IsSpace(source) || !unicode.IsGraphic(source) {
			continue
		}
		sourceSkeleton := foldedSkeleton(entry.Source)
		for _, candidate := range entry.Candidates {
			if candidate == source || !unicode.IsGraphic(candidate) {
				continue
			}
			if width.Fold.String(string(candidate)) == entry.Source {
				continue
			}
			if skeleton := foldedSkeleton(string(candidate)); skeleton != sourceSkeleton {
				problems = append(problems, Problem{
					Kind:      ProblemNotConfusable,
					Severity:  SeverityWarning,
					Source:    entry.Source,
					Candidate: candidate,
					Detail:    fmt.Sprintf("skeleton %q differs from %q", skeleton, sourceSkeleton),
				})
			}
		}
	}
	return
}

// foldedSkeleton is the confusables skeleton with combining marks removed,
// so accented variants still count as look-alikes of their base letter.
func foldedSkeleton(s string) string {
	return utils.StripMarks(confusables.Skeleton(s))
}
