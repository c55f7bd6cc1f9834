// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

// Package obf implements reversible look-alike obfuscation of text: the
// substitution pass over a mapping table, the noise and gap disguises, and
// the pipeline that chains them in either direction.
package obf

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/txtobf/txtobf/obf/tables"
)

// Policy selects what a Pipeline does. It is read-only once the pipeline is
// built.
type Policy struct {
	Table tables.ID
	// Reverse applies the inverse pipeline, recovering the original text.
	Reverse bool
	// Gaps disguises spaces and widens letter spacing (or undoes that).
	Gaps bool
	// NoisePercent is the chance, per eligible letter boundary, of inserting
	// a zero-width marker. Ignored when reversing, since removal is total.
	NoisePercent int
	// Seed makes the random choices reproducible; nil uses the clock.
	Seed *int64
	// Normalize composes the input to NFC before obfuscating.
	Normalize bool
	// Skeleton folds leftover look-alikes to ASCII after reversing.
	Skeleton bool
}

// Validate checks the policy parameters that don't depend on a registry.
func (p Policy) Validate() error {
	if p.NoisePercent < 0 || p.NoisePercent > 100 {
		return fmt.Errorf("%w: %d", ErrNoisePercentOutOfRange, p.NoisePercent)
	}
	return nil
}

// the generators for each random stage, derived from one seed in a fixed
// order so enabling a stage never changes the draws of another
type stageRNGs struct {
	gaps       *rand.Rand
	noise      *rand.Rand
	substitute *rand.Rand
}

func deriveRNGs(seed int64) stageRNGs {
	master := rand.New(rand.NewSource(seed))
	return stageRNGs{
		gaps:       rand.New(rand.NewSource(master.Int63())),
		noise:      rand.New(rand.NewSource(master.Int63())),
		substitute: rand.New(rand.NewSource(master.Int63())),
	}
}

// Pipeline obfuscates or deobfuscates text under a fixed Policy. A Pipeline
// may be used from several goroutines: every call builds its own stages and
// generators from the resolved seed, so equal inputs give equal outputs.
type Pipeline struct {
	policy Policy
	table  *tables.Table
	active *tables.Table
	seed   int64
}

// NewPipeline validates policy, resolves its table in registry (the
// built-in tables if registry is nil), and inverts the table if reversing.
func NewPipeline(registry *tables.Registry, policy Policy) (*Pipeline, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if registry == nil {
		registry = tables.DefaultRegistry()
	}
	table, err := registry.Lookup(policy.Table)
	if err != nil {
		return nil, err
	}
	if err := tables.Check(table.Name(), table.Entries()); err != nil {
		return nil, err
	}

	result := &Pipeline{
		policy: policy,
		table:  table,
		active: table,
	}
	if policy.Reverse {
		result.active = tables.Invert(table)
	}
	if policy.Seed != nil {
		result.seed = *policy.Seed
	} else {
		result.seed = time.Now().UnixNano()
	}
	result.policy.Seed = &result.seed
	return result, nil
}

// Policy returns the pipeline's policy, with the seed resolved.
func (p *Pipeline) Policy() Policy {
	return p.policy
}

// Seed returns the seed actually in use. Recording it allows an
// obfuscation to be repeated exactly.
func (p *Pipeline) Seed() int64 {
	return p.seed
}

// Table returns the forward table the pipeline was built from.
func (p *Pipeline) Table() *tables.Table {
	return p.table
}

// Stages lists the names of the stages in the order they run.
func (p *Pipeline) Stages() (result []string) {
	if p.policy.Reverse {
		if p.policy.Gaps {
			result = append(result, "remove-gaps")
		}
		result = append(result, "remove-noise", "substitute")
		if p.policy.Skeleton {
			result = append(result, "skeleton")
		}
		return
	}
	if p.policy.Normalize {
		result = append(result, "nfc")
	}
	if p.policy.Gaps {
		result = append(result, "add-gaps")
	}
	if p.policy.NoisePercent > 0 {
		result = append(result, "add-noise")
	}
	return append(result, "substitute")
}

// Transformer returns a fresh transform.Transformer running every stage,
// with generators starting from the pipeline's seed.
func (p *Pipeline) Transformer() transform.Transformer {
	rngs := deriveRNGs(p.seed)
	var stages []transform.Transformer
	if p.policy.Reverse {
		if p.policy.Gaps {
			stages = append(stages, GapRemover())
		}
		// noise is always stripped; markers are never meaningful content
		stages = append(stages, NoiseRemover())
		stages = append(stages, NewSubstituter(p.active, rngs.substitute))
		if p.policy.Skeleton {
			stages = append(stages, SkeletonFolder())
		}
	} else {
		if p.policy.Normalize {
			stages = append(stages, norm.NFC)
		}
		if p.policy.Gaps {
			stages = append(stages, NewGapAdder(rngs.gaps))
		}
		if p.policy.NoisePercent > 0 {
			stages = append(stages, NewNoiseAdder(rngs.noise, p.policy.NoisePercent))
		}
		stages = append(stages, NewSubstituter(p.active, rngs.substitute))
	}
	if len(stages) == 1 {
		return stages[0]
	}
	return transform.Chain(stages...)
}

// String runs the pipeline over s, which must be valid UTF-8.
func (p *Pipeline) String(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	result, _, err := transform.String(p.Transformer(), s)
	if err != nil {
		return "", err
	}
	return result, nil
}

// Reader returns a reader producing the pipeline's output for r. Invalid
// UTF-8 is passed through rather than rejected, since the input can't be
// checked before it is read.
func (p *Pipeline) Reader(r io.Reader) io.Reader {
	return transform.NewReader(r, p.Transformer())
}

// Describe summarizes the pipeline for logs.
func (p *Pipeline) Describe() string {
	direction := "obfuscate"
	if p.policy.Reverse {
		direction = "reverse"
	}
	return fmt.Sprintf("%s table=%s seed=%d stages=%s", direction, p.table, p.seed, strings.Join(p.Stages(), ","))
}
