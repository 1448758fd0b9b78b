// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/Edges/EdgesBetween/Multiplicity.
// Determinism:
//   - Edges() returns edges in index order.
//   - EdgesBetween returns ascending edge indices.
// Concurrency:
//   - Mutations under the write lock; read queries under the read lock.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddEdge appends an edge from→to with the given label and returns its index.
// Self-loops (from==to) and parallel edges are permitted.
//
// Steps:
//  1. Validate both endpoints (ErrNodeNotFound).
//  2. Build the Edge, apply opts, append to the edge list.
//  3. Link adjacency: out[from]; in[to] for directed graphs, out[to] for undirected non-loops.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, label string, opts ...EdgeOption) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 0 || from >= len(g.nodes) {
		return -1, errors.Wrapf(ErrNodeNotFound, "edge endpoint from=%d", from)
	}
	if to < 0 || to >= len(g.nodes) {
		return -1, errors.Wrapf(ErrNodeNotFound, "edge endpoint to=%d", to)
	}

	return g.addEdgeLocked(from, to, label, opts...), nil
}

func (g *Graph) addEdgeLocked(from, to int, label string, opts ...EdgeOption) int {
	e := &Edge{Index: len(g.edges), Label: label, From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	g.edges = append(g.edges, e)
	g.linkLocked(e)

	return e.Index
}

// linkLocked adds e to the adjacency lists.
func (g *Graph) linkLocked(e *Edge) {
	g.out[e.From] = append(g.out[e.From], e.Index)
	if g.directed {
		g.in[e.To] = append(g.in[e.To], e.Index)
		return
	}
	if e.From != e.To {
		g.out[e.To] = append(g.out[e.To], e.Index)
	}
}

// RemoveEdge deletes edge idx and renumbers the remaining edges densely.
//
// Complexity: O(V+E) (adjacency rebuild). Concurrency: write lock.
func (g *Graph) RemoveEdge(idx int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx < 0 || idx >= len(g.edges) {
		return errors.Wrapf(ErrEdgeNotFound, "remove %d", idx)
	}
	copy(g.edges[idx:], g.edges[idx+1:])
	g.edges[len(g.edges)-1] = nil
	g.edges = g.edges[:len(g.edges)-1]

	g.reindexLocked()
	g.rebuildAdjacencyLocked()

	return nil
}

// Edge returns a copy of the edge at idx.
//
// Errors: ErrEdgeNotFound.
func (g *Graph) Edge(idx int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.edges) {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "index %d", idx)
	}

	return *g.edges[idx], nil
}

// Edges returns copies of all edges in index order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// HasEdge reports whether at least one edge connects u to v
// (either orientation for undirected graphs).
func (g *Graph) HasEdge(u, v int) bool {
	return g.Multiplicity(u, v) > 0
}

// EdgesBetween returns the indices of edges u→v (directed) or {u,v}
// (undirected), ascending. Unknown nodes yield an empty result.
//
// Complexity: O(deg(u)).
func (g *Graph) EdgesBetween(u, v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesBetweenLocked(u, v)
}

func (g *Graph) edgesBetweenLocked(u, v int) []int {
	if u < 0 || u >= len(g.nodes) || v < 0 || v >= len(g.nodes) {
		return nil
	}
	var res []int
	for _, ei := range g.out[u] {
		e := g.edges[ei]
		if g.directed {
			if e.To == v {
				res = append(res, ei)
			}
			continue
		}
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			res = append(res, ei)
		}
	}

	return res
}

// Multiplicity returns the number of parallel edges u→v (or {u,v}).
func (g *Graph) Multiplicity(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgesBetweenLocked(u, v))
}

// IncidentEdges returns indices of every edge touching idx, ascending and
// without duplicates (a self-loop appears once).
//
// Errors: ErrNodeNotFound.
func (g *Graph) IncidentEdges(idx int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return nil, errors.Wrapf(ErrNodeNotFound, "incident %d", idx)
	}
	res := append([]int(nil), g.out[idx]...)
	if g.directed {
		for _, ei := range g.in[idx] {
			if g.edges[ei].From != g.edges[ei].To {
				res = append(res, ei)
			}
		}
	}
	sort.Ints(res)

	return res, nil
}
