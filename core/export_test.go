package core

// CorruptEdgeEndpoint rewrites an edge endpoint without touching adjacency.
// Test-only hook for CheckConsistency coverage.
func CorruptEdgeEndpoint(g *Graph, edge, to int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edges[edge].To = to
}

// DropAdjacencyEntry removes the last entry of out[node] without touching the edge list.
func DropAdjacencyEntry(g *Graph, node int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if l := len(g.out[node]); l > 0 {
		g.out[node] = g.out[node][:l-1]
	}
}

// ShuffleNodeIndex overwrites a node Index field.
func ShuffleNodeIndex(g *Graph, node, idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[node].Index = idx
}
