// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// impl_star.go: Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; node 0 is the center, edges center -> leaf i (i=1..n-1).
//   • Complete: n ≥ 1; every unordered pair {i<j} once, plus j->i for directed graphs.
//
// Complexity: Star O(n); Complete O(n²).

package builder

import "github.com/katalvlaran/graphedit/core"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			u, v := base, base+i
			if _, err := g.AddEdge(u, v, cfg.edgeLabel(u, v)); err != nil {
				return builderErrorf(methodStar, err, "AddEdge(%d→%d)", u, v)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		base := addNodes(g, cfg, n)
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := base+i, base+j
				if _, err := g.AddEdge(u, v, cfg.edgeLabel(u, v)); err != nil {
					return builderErrorf(methodComplete, err, "AddEdge(%d→%d)", u, v)
				}
				if directed {
					if _, err := g.AddEdge(v, u, cfg.edgeLabel(v, u)); err != nil {
						return builderErrorf(methodComplete, err, "AddEdge(%d→%d)", v, u)
					}
				}
			}
		}

		return nil
	}
}
