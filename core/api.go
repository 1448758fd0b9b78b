// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing read-only getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"fmt"
	"strings"
)

// Name returns the graph name given at construction (possibly empty).
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// Directed reports whether edges of this graph are directed.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// NodeCount returns the number of nodes.
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges (parallel edges counted individually).
//
// Complexity: O(1). Concurrency: read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats produces a deterministic snapshot of the graph shape.
//
// Implementation:
//   - Stage 1: Copy name, directedness and counts under the read lock.
//   - Stage 2: Scan edges once, classifying self-loops and parallel edges.
//   - Stage 3: Scan nodes once for the maximum degree.
//
// Complexity: Time O(V+E), Space O(E) for the pair set.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Name:      g.name,
		Directed:  g.directed,
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
	}

	seen := make(map[[2]int]struct{}, len(g.edges))
	var (
		e   *Edge
		key [2]int
		ok  bool
	)
	for _, e = range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
		key = g.pairKey(e.From, e.To)
		if _, ok = seen[key]; ok {
			stats.ParallelEdges++
			continue
		}
		seen[key] = struct{}{}
	}

	var v, d int
	for v = range g.nodes {
		d = g.degreeLocked(v)
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}

// String renders the graph in a compact, deterministic multi-line form:
//
//	graph "name" directed nodes=2 edges=1
//	  n0 "a"
//	  n1 "b"
//	  e0 n1->n0 "x"
//
// Complexity: O(V+E).
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	mode := "undirected"
	arrow := "--"
	if g.directed {
		mode = "directed"
		arrow = "->"
	}
	fmt.Fprintf(&sb, "graph %q %s nodes=%d edges=%d\n", g.name, mode, len(g.nodes), len(g.edges))
	for _, n := range g.nodes {
		fmt.Fprintf(&sb, "  n%d %q\n", n.Index, n.Label)
	}
	for _, e := range g.edges {
		fmt.Fprintf(&sb, "  e%d n%d%sn%d %q\n", e.Index, e.From, arrow, e.To, e.Label)
	}

	return sb.String()
}

// pairKey returns the map key for an endpoint pair, normalized for undirected graphs.
// Caller must hold at least a read lock.
func (g *Graph) pairKey(u, v int) [2]int {
	if !g.directed && v < u {
		u, v = v, u
	}

	return [2]int{u, v}
}
