// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-test/deep"

	"github.com/txtobf/txtobf/obf/tables"
)

const sampleText = `The quick brown fox jumps over the lazy dog.
Pack my box with five dozen liquor jugs: 0123456789!
"Quoted", (parenthesized) & [bracketed] -- done; ok?
`

func seed(value int64) *int64 {
	return &value
}

func mustPipeline(t *testing.T, registry *tables.Registry, policy Policy) *Pipeline {
	pipeline, err := NewPipeline(registry, policy)
	if err != nil {
		t.Fatal(err)
	}
	return pipeline
}

func mustString(t *testing.T, pipeline *Pipeline, input string) string {
	output, err := pipeline.String(input)
	if err != nil {
		t.Fatal(err)
	}
	return output
}

func TestPolicyValidate(t *testing.T) {
	for _, percent := range []int{-1, 101, 1000} {
		err := Policy{Table: tables.Deterministic, NoisePercent: percent}.Validate()
		if !errors.Is(err, ErrNoisePercentOutOfRange) {
			t.Errorf("noise percent %d: expected ErrNoisePercentOutOfRange, got %v", percent, err)
		}
	}
	for _, percent := range []int{0, 1, 100} {
		if err := (Policy{Table: tables.Deterministic, NoisePercent: percent}).Validate(); err != nil {
			t.Errorf("noise percent %d: unexpected error %v", percent, err)
		}
	}
}

func TestNewPipelineErrors(t *testing.T) {
	if _, err := NewPipeline(nil, Policy{Table: 0}); !errors.Is(err, tables.ErrUnknownTable) {
		t.Errorf("expected ErrUnknownTable, got %v", err)
	}
	if _, err := NewPipeline(nil, Policy{Table: tables.Fullwidth + 1}); !errors.Is(err, tables.ErrUnknownTable) {
		t.Errorf("expected ErrUnknownTable, got %v", err)
	}
	if _, err := NewPipeline(nil, Policy{Table: tables.Random, NoisePercent: 200}); !errors.Is(err, ErrNoisePercentOutOfRange) {
		t.Errorf("expected ErrNoisePercentOutOfRange, got %v", err)
	}
}

func TestInvalidUTF8(t *testing.T) {
	pipeline := mustPipeline(t, nil, Policy{Table: tables.Fullwidth})
	if _, err := pipeline.String("ab\xffcd"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestFullwidthScenario(t *testing.T) {
	pipeline := mustPipeline(t, nil, Policy{Table: tables.Fullwidth})
	if got := mustString(t, pipeline, "AB 12"); got != "\uFF21\uFF22\u3000\uFF11\uFF12" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestIdentityEntriesScenario(t *testing.T) {
	registry := tables.DefaultRegistry()
	table, err := registry.Register("identity", "", []tables.Entry{
		{Source: "a", Candidates: "a"},
		{Source: "b", Candidates: "b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	pipeline := mustPipeline(t, registry, Policy{Table: table.ID()})
	if got := mustString(t, pipeline, "abcab"); got != "abcab" {
		t.Errorf("identity entries changed the text: %q", got)
	}
}

func TestReverseScenario(t *testing.T) {
	pipeline := mustPipeline(t, nil, Policy{Table: tables.Fullwidth, Reverse: true})
	if got := mustString(t, pipeline, "\uFF28\uFF45\uFF4C\uFF4C\uFF4F\u3000\uFF57\uFF4F\uFF52\uFF4C\uFF44\uFF01"); got != "Hello world!" {
		t.Errorf("unexpected reversal %q", got)
	}
	if !pipeline.Table().Deterministic() || pipeline.Table().Reversed() {
		t.Error("Table should return the forward table")
	}
}

func TestRoundTrip(t *testing.T) {
	type roundTrip struct {
		table   tables.ID
		gaps    bool
		noise   int
		seedVal int64
	}
	var testCases []roundTrip
	for _, table := range tables.All() {
		for _, gaps := range []bool{false, true} {
			for _, noise := range []int{0, 50, 100} {
				testCases = append(testCases, roundTrip{table.ID(), gaps, noise, int64(table.ID())*1000 + int64(noise)})
			}
		}
	}

	for i, tt := range testCases {
		t.Run(fmt.Sprintf("case %d: table=%d gaps=%t noise=%d", i, tt.table, tt.gaps, tt.noise), func(t *testing.T) {
			forward := mustPipeline(t, nil, Policy{Table: tt.table, Gaps: tt.gaps, NoisePercent: tt.noise, Seed: seed(tt.seedVal)})
			obfuscated := mustString(t, forward, sampleText)
			if tt.gaps && obfuscated == sampleText {
				t.Error("gaps had no effect")
			}

			reverse := mustPipeline(t, nil, Policy{Table: tt.table, Gaps: tt.gaps, Reverse: true})
			if recovered := mustString(t, reverse, obfuscated); recovered != sampleText {
				t.Errorf("round trip failed:\n%q\n%q", obfuscated, recovered)
			}
		})
	}
}

func TestSeedReproducible(t *testing.T) {
	policy := Policy{Table: tables.PartialAll, Gaps: true, NoisePercent: 40, Seed: seed(1234)}
	first := mustString(t, mustPipeline(t, nil, policy), sampleText)
	second := mustString(t, mustPipeline(t, nil, policy), sampleText)
	if first != second {
		t.Error("same seed gave different output")
	}

	pipeline := mustPipeline(t, nil, policy)
	if mustString(t, pipeline, sampleText) != mustString(t, pipeline, sampleText) {
		t.Error("repeated runs of one pipeline differ")
	}

	policy.Seed = seed(4321)
	if mustString(t, mustPipeline(t, nil, policy), sampleText) == first {
		t.Error("different seeds gave identical output")
	}
}

func TestSeedResolved(t *testing.T) {
	pipeline := mustPipeline(t, nil, Policy{Table: tables.Random})
	replay := mustPipeline(t, nil, Policy{Table: tables.Random, Seed: seed(pipeline.Seed())})
	if mustString(t, pipeline, sampleText) != mustString(t, replay, sampleText) {
		t.Error("replaying the resolved seed should reproduce the output")
	}
	if policy := pipeline.Policy(); policy.Seed == nil || *policy.Seed != pipeline.Seed() {
		t.Error("Policy should report the resolved seed")
	}
}

func TestStreamingMatchesString(t *testing.T) {
	input := strings.Repeat(sampleText, 20)
	for i, policy := range []Policy{
		{Table: tables.Random, Gaps: true, NoisePercent: 30, Seed: seed(99)},
		{Table: tables.PartialAll, NoisePercent: 100, Normalize: true, Seed: seed(5)},
		{Table: tables.Partial, Gaps: true, Reverse: true, Skeleton: true, Seed: seed(5)},
	} {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			pipeline := mustPipeline(t, nil, policy)
			expected := mustString(t, pipeline, input)
			streamed, err := io.ReadAll(pipeline.Reader(iotest.OneByteReader(strings.NewReader(input))))
			if err != nil {
				t.Fatal(err)
			}
			if string(streamed) != expected {
				t.Error("streamed output differs from String output")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	// e + COMBINING ACUTE ACCENT composes to U+00E9, which fullwidth doesn't map
	plain := mustPipeline(t, nil, Policy{Table: tables.Fullwidth})
	normalized := mustPipeline(t, nil, Policy{Table: tables.Fullwidth, Normalize: true})
	if got := mustString(t, plain, "e\u0301"); got != "\uFF45\u0301" {
		t.Errorf("without normalization the base letter is substituted, got %q", got)
	}
	if got := mustString(t, normalized, "e\u0301"); got != "\u00E9" {
		t.Errorf("with normalization the composed letter is kept, got %q", got)
	}
}

func TestStages(t *testing.T) {
	type stagesTest struct {
		policy   Policy
		expected []string
	}
	testCases := []stagesTest{
		{Policy{Table: tables.Random}, []string{"substitute"}},
		{Policy{Table: tables.Random, Normalize: true, Gaps: true, NoisePercent: 10}, []string{"nfc", "add-gaps", "add-noise", "substitute"}},
		{Policy{Table: tables.Random, Reverse: true}, []string{"remove-noise", "substitute"}},
		{Policy{Table: tables.Random, Reverse: true, Gaps: true, Skeleton: true, NoisePercent: 10}, []string{"remove-gaps", "remove-noise", "substitute", "skeleton"}},
	}
	for i, tt := range testCases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			pipeline := mustPipeline(t, nil, tt.policy)
			if diff := deep.Equal(pipeline.Stages(), tt.expected); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestReverseWithSkeleton(t *testing.T) {
	// text obfuscated with one table, reversed with another
	obfuscated := mustString(t, mustPipeline(t, nil, Policy{Table: tables.Deterministic}), "aoe")
	if obfuscated == "aoe" {
		t.Fatal("deterministic table should change a, o and e")
	}
	plain := mustPipeline(t, nil, Policy{Table: tables.Fullwidth, Reverse: true})
	if mustString(t, plain, obfuscated) != obfuscated {
		t.Error("fullwidth reversal should not touch Cyrillic look-alikes")
	}
	folding := mustPipeline(t, nil, Policy{Table: tables.Fullwidth, Reverse: true, Skeleton: true})
	if got := mustString(t, folding, obfuscated); got != "aoe" {
		t.Errorf("skeleton folding gave %q", got)
	}
}
