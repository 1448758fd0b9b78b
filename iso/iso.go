// SPDX-License-Identifier: MIT

package iso

import (
	"github.com/katalvlaran/graphedit/core"
)

// Isomorphic reports whether g1 and g2 are isomorphic as multigraphs: equal
// directedness, and a node bijection preserving every pair multiplicity
// (self-loops included). WithNodeLabels and WithEdgeLabels add label checks.
//
// A nil graph is isomorphic to nothing.
func Isomorphic(g1, g2 *core.Graph, opts ...Option) bool {
	_, ok := Mapping(g1, g2, opts...)

	return ok
}

// Mapping returns a witnessing bijection mapping[u] = v from g1 onto g2.
//
// Stages:
//   - Stage 1: cheap counts (nodes, edges, directedness).
//   - Stage 2: label histograms when node labels matter.
//   - Stage 3: signature pre-filter and backtracking via Matcher.Extend.
func Mapping(g1, g2 *core.Graph, opts ...Option) ([]int, bool) {
	if g1 == nil || g2 == nil {
		return nil, false
	}
	if g1.Directed() != g2.Directed() || g1.NodeCount() != g2.NodeCount() || g1.EdgeCount() != g2.EdgeCount() {
		return nil, false
	}
	cfg := newConfig(opts)
	if cfg.nodeLabels && !SameHistogram(LabelHistogram(g1.Labels()), LabelHistogram(g2.Labels())) {
		return nil, false
	}

	m := NewMatcher(g1, g2, opts...)
	partial := make([]int, m.a.n)
	for i := range partial {
		partial[i] = Free
	}

	return m.Extend(partial)
}
