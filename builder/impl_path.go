// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// impl_path.go: Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 1, edges i -> i+1 for i=0..n-2.
//   • Cycle: n ≥ 3, edges i -> (i+1)%n for i=0..n-1.
//   • Node labels via cfg.labelFn, edge labels via cfg.edgeLabelFn.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import "github.com/katalvlaran/graphedit/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 1
	minCycleNodes = 3
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			u, v := base+i, base+i+1
			if _, err := g.AddEdge(u, v, cfg.edgeLabel(u, v)); err != nil {
				return builderErrorf(methodPath, err, "AddEdge(%d→%d)", u, v)
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that appends an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		base := addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			u, v := base+i, base+(i+1)%n
			if _, err := g.AddEdge(u, v, cfg.edgeLabel(u, v)); err != nil {
				return builderErrorf(methodCycle, err, "AddEdge(%d→%d)", u, v)
			}
		}

		return nil
	}
}
