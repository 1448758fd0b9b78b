// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors/Successors/Predecessors) and adjacency maintenance.
// Determinism:
//   - All neighbor queries return unique node indices in ascending order.
// Concurrency:
//   - Read lock for queries; rebuildAdjacencyLocked requires the write lock.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// Neighbors returns the unique nodes adjacent to idx in either direction,
// ascending. A self-loop makes idx its own neighbor.
//
// Errors: ErrNodeNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "neighbors %d", idx)
	}
	seen := make(map[int]struct{})
	g.collectOther(idx, g.out[idx], seen)
	if g.directed {
		g.collectOther(idx, g.in[idx], seen)
	}

	return sortedKeys(seen), nil
}

// Successors returns the unique targets of edges leaving idx (directed), or
// Neighbors for undirected graphs.
func (g *Graph) Successors(idx int) ([]int, error) {
	if !g.Directed() {
		return g.Neighbors(idx)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "successors %d", idx)
	}
	seen := make(map[int]struct{})
	g.collectOther(idx, g.out[idx], seen)

	return sortedKeys(seen), nil
}

// Predecessors returns the unique sources of edges entering idx (directed),
// or Neighbors for undirected graphs.
func (g *Graph) Predecessors(idx int) ([]int, error) {
	if !g.Directed() {
		return g.Neighbors(idx)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "predecessors %d", idx)
	}
	seen := make(map[int]struct{})
	g.collectOther(idx, g.in[idx], seen)

	return sortedKeys(seen), nil
}

// collectOther adds the endpoint opposite to idx of every listed edge.
func (g *Graph) collectOther(idx int, list []int, seen map[int]struct{}) {
	for _, ei := range list {
		e := g.edges[ei]
		if e.From == idx {
			seen[e.To] = struct{}{}
		} else {
			seen[e.From] = struct{}{}
		}
	}
}

// rebuildAdjacencyLocked recomputes out/in from the edge list.
//
// Complexity: O(V+E).
func (g *Graph) rebuildAdjacencyLocked() {
	g.out = make([][]int, len(g.nodes))
	if g.directed {
		g.in = make([][]int, len(g.nodes))
	} else {
		g.in = nil
	}
	for _, e := range g.edges {
		g.linkLocked(e)
	}
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
