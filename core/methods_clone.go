// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves node/edge indices, labels, attributes and order.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

// CloneEmpty returns a new Graph with identical configuration and nodes, but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneNodesLocked()
}

func (g *Graph) cloneNodesLocked() *Graph {
	clone := NewGraph(WithDirected(g.directed), WithName(g.name))
	clone.nodes = make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		cp := *n
		clone.nodes[i] = &cp
	}
	clone.out = make([][]int, len(g.nodes))
	if g.directed {
		clone.in = make([][]int, len(g.nodes))
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, nodes, edges, and
// adjacency. The clone shares no mutable storage with g.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneNodesLocked()
	clone.edges = make([]*Edge, len(g.edges))
	for i, e := range g.edges {
		cp := *e
		clone.edges[i] = &cp
	}
	// Copy adjacency verbatim (not rebuilt) so an inconsistent source stays
	// inconsistent in the clone and CheckConsistency reports the same result.
	for v := 0; v < len(g.out) && v < len(clone.out); v++ {
		clone.out[v] = append([]int(nil), g.out[v]...)
	}
	for v := 0; v < len(g.in) && v < len(clone.in); v++ {
		clone.in[v] = append([]int(nil), g.in[v]...)
	}

	return clone
}

// Clear removes all nodes and edges while preserving name and directedness.
//
// Complexity: O(1). Concurrency: write lock.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.edges = nil
	g.out = nil
	g.in = nil
}
