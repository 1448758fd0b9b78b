// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil functions, nil RNG);
//     constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the deterministic node label generator: idx -> label.
// Panics on nil.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}

// WithEdgeLabelScheme sets the deterministic edge label generator.
// Panics on nil.
func WithEdgeLabelScheme(fn func(from, to int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeLabelScheme(nil)")
	}
	return func(c *builderConfig) { c.edgeLabelFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNodeAlphabet makes random builders draw node labels from alphabet.
// Ignored without an RNG. Panics on an empty alphabet.
func WithNodeAlphabet(alphabet ...string) BuilderOption {
	if len(alphabet) == 0 {
		panic("builder: WithNodeAlphabet()")
	}
	cp := append([]string(nil), alphabet...)
	return func(c *builderConfig) { c.nodeAlphabet = cp }
}

// WithEdgeAlphabet makes random builders draw edge labels from alphabet.
// Panics on an empty alphabet.
func WithEdgeAlphabet(alphabet ...string) BuilderOption {
	if len(alphabet) == 0 {
		panic("builder: WithEdgeAlphabet()")
	}
	cp := append([]string(nil), alphabet...)
	return func(c *builderConfig) { c.edgeAlphabet = cp }
}

// WithSelfLoops lets random builders draw u==v edges.
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) { c.selfLoops = true }
}
