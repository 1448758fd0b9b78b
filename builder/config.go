// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • labelFn      = decimalLabel       ("0","1","2",...)
//   • edgeLabelFn  = emptyEdgeLabel     ("")
//   • rng          = nil                (pure/deterministic unless seeded)
//   • alphabets    = nil                (labels come from labelFn)
//   • selfLoops    = false              (random builders skip u==v draws)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node label strategy: index -> label (deterministic).
	labelFn func(int) string
	// Edge label strategy: (from, to) -> label.
	edgeLabelFn func(int, int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Optional label alphabets sampled by random builders.
	nodeAlphabet []string
	edgeAlphabet []string
	// Whether random builders may draw self-loops.
	selfLoops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:     decimalLabel,
		edgeLabelFn: emptyEdgeLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nodeLabel picks the label for node i: alphabet draw when configured with an
// rng, otherwise labelFn.
func (c builderConfig) nodeLabel(i int) string {
	if len(c.nodeAlphabet) > 0 && c.rng != nil {
		return c.nodeAlphabet[c.rng.Intn(len(c.nodeAlphabet))]
	}

	return c.labelFn(i)
}

// edgeLabel picks the label for an edge u→v.
func (c builderConfig) edgeLabel(u, v int) string {
	if len(c.edgeAlphabet) > 0 && c.rng != nil {
		return c.edgeAlphabet[c.rng.Intn(len(c.edgeAlphabet))]
	}

	return c.edgeLabelFn(u, v)
}

// decimalLabel renders an index as a base-10 string ("0","1","2",...).
func decimalLabel(i int) string {
	return strconv.Itoa(i)
}

func emptyEdgeLabel(int, int) string { return "" }
