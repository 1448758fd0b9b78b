// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in index order.
//   - RemoveNode renumbers survivors preserving their relative order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.
package core

import "github.com/pkg/errors"

// AddNode appends a node with the given label and returns its index.
//
// Complexity: O(1) amortized. Concurrency: write lock.
func (g *Graph) AddNode(label string, opts ...NodeOption) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(label, opts...)
}

func (g *Graph) addNodeLocked(label string, opts ...NodeOption) int {
	n := &Node{Index: len(g.nodes), Label: label}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes = append(g.nodes, n)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return n.Index
}

// HasNode reports whether idx is a valid node index.
func (g *Graph) HasNode(idx int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return idx >= 0 && idx < len(g.nodes)
}

// Node returns a copy of the node at idx.
//
// Errors: ErrNodeNotFound when idx is out of range.
func (g *Graph) Node(idx int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return Node{}, errors.Wrapf(ErrNodeNotFound, "index %d", idx)
	}

	return *g.nodes[idx], nil
}

// Nodes returns copies of all nodes in index order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = *n
	}

	return out
}

// Labels returns node labels in index order.
func (g *Graph) Labels() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.Label
	}

	return out
}

// RelabelNode replaces the label of node idx.
//
// Errors: ErrNodeNotFound.
func (g *Graph) RelabelNode(idx int, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx < 0 || idx >= len(g.nodes) {
		return errors.Wrapf(ErrNodeNotFound, "relabel %d", idx)
	}
	g.nodes[idx].Label = label

	return nil
}

// RemoveNode deletes node idx together with its incident edges, then
// renumbers the remaining nodes and edges densely.
//
// Implementation:
//   - Stage 1: Validate the index.
//   - Stage 2: Filter out incident edges, shifting endpoints above idx down by one.
//   - Stage 3: Drop the node, reindex survivors and rebuild adjacency.
//
// Complexity: O(V+E). Concurrency: write lock.
func (g *Graph) RemoveNode(idx int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx < 0 || idx >= len(g.nodes) {
		return errors.Wrapf(ErrNodeNotFound, "remove %d", idx)
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == idx || e.To == idx {
			continue
		}
		if e.From > idx {
			e.From--
		}
		if e.To > idx {
			e.To--
		}
		kept = append(kept, e)
	}
	// clear the tail so removed edges are not retained by the backing array
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	copy(g.nodes[idx:], g.nodes[idx+1:])
	g.nodes[len(g.nodes)-1] = nil
	g.nodes = g.nodes[:len(g.nodes)-1]

	g.reindexLocked()
	g.rebuildAdjacencyLocked()

	return nil
}

// Degree returns the number of edge endpoints at node idx.
// Undirected self-loops count twice; for directed graphs Degree = in + out
// (a directed self-loop contributes one to each).
//
// Errors: ErrNodeNotFound.
func (g *Graph) Degree(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return 0, errors.Wrapf(ErrNodeNotFound, "degree %d", idx)
	}

	return g.degreeLocked(idx), nil
}

// InDegree returns the number of edges entering idx (directed), or Degree for undirected graphs.
func (g *Graph) InDegree(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return 0, errors.Wrapf(ErrNodeNotFound, "in-degree %d", idx)
	}
	if !g.directed {
		return g.degreeLocked(idx), nil
	}

	return len(g.in[idx]), nil
}

// OutDegree returns the number of edges leaving idx (directed), or Degree for undirected graphs.
func (g *Graph) OutDegree(idx int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return 0, errors.Wrapf(ErrNodeNotFound, "out-degree %d", idx)
	}
	if !g.directed {
		return g.degreeLocked(idx), nil
	}

	return len(g.out[idx]), nil
}

func (g *Graph) degreeLocked(idx int) int {
	if g.directed {
		return len(g.out[idx]) + len(g.in[idx])
	}
	d := 0
	for _, ei := range g.out[idx] {
		d++
		if e := g.edges[ei]; e.From == e.To {
			d++
		}
	}

	return d
}

// reindexLocked rewrites Index fields to match slice positions.
func (g *Graph) reindexLocked() {
	for i, n := range g.nodes {
		n.Index = i
	}
	for i, e := range g.edges {
		e.Index = i
	}
}
