// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"github.com/katalvlaran/graphedit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors append nodes after any existing ones, so
// several constructors compose into disjoint unions.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf("BuildGraph", ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, builderErrorf("BuildGraph", err, "constructor %d", i)
		}
	}

	return g, nil
}

// addNodes appends n nodes labeled by cfg and returns the index of the first.
func addNodes(g *core.Graph, cfg builderConfig, n int) int {
	base := g.NodeCount()
	for i := 0; i < n; i++ {
		g.AddNode(cfg.nodeLabel(i))
	}

	return base
}
