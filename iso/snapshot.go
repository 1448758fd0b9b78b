// File: snapshot.go
// Role: Immutable, index-based prefetch of a graph for matching.
// Determinism:
//   - Neighbor lists are ascending; edge-label multisets are sorted.
// Concurrency:
//   - Built once from a locked read of the graph; read-only afterwards.

package iso

import (
	"sort"

	"github.com/katalvlaran/graphedit/core"
)

// snapshot holds everything the matcher reads in hot loops.
type snapshot struct {
	n, m     int
	directed bool
	labels   []string

	out   []int // out-degree (total degree, loop counted twice, when undirected)
	in    []int // in-degree (directed only)
	loops []int // self-loop count per node

	pairs      map[[2]int]int      // multiplicity per (normalized) pair
	pairLabels map[[2]int][]string // sorted edge labels per pair, when edge labels matter
	nbrs       [][]int             // distinct neighbors in either direction, self excluded
}

func newSnapshot(g *core.Graph, edgeLabels bool) *snapshot {
	nodes := g.Nodes()
	edges := g.Edges()
	s := &snapshot{
		n:        len(nodes),
		m:        len(edges),
		directed: g.Directed(),
		labels:   make([]string, len(nodes)),
		out:      make([]int, len(nodes)),
		in:       make([]int, len(nodes)),
		loops:    make([]int, len(nodes)),
		pairs:    make(map[[2]int]int, len(edges)),
		nbrs:     make([][]int, len(nodes)),
	}
	if edgeLabels {
		s.pairLabels = make(map[[2]int][]string, len(edges))
	}
	for i, n := range nodes {
		s.labels[i] = n.Label
	}

	seen := make([]map[int]struct{}, len(nodes))
	link := func(u, v int) {
		if seen[u] == nil {
			seen[u] = make(map[int]struct{})
		}
		seen[u][v] = struct{}{}
	}
	for _, e := range edges {
		k := s.key(e.From, e.To)
		s.pairs[k]++
		if edgeLabels {
			s.pairLabels[k] = append(s.pairLabels[k], e.Label)
		}
		if e.From == e.To {
			s.loops[e.From]++
		} else {
			link(e.From, e.To)
			link(e.To, e.From)
		}
		if s.directed {
			s.out[e.From]++
			s.in[e.To]++
		} else {
			s.out[e.From]++
			s.out[e.To]++
		}
	}
	for _, ls := range s.pairLabels {
		sort.Strings(ls)
	}
	for u := range seen {
		for v := range seen[u] {
			s.nbrs[u] = append(s.nbrs[u], v)
		}
		sort.Ints(s.nbrs[u])
	}

	return s
}

// key normalizes a pair for undirected graphs.
func (s *snapshot) key(u, v int) [2]int {
	if !s.directed && v < u {
		u, v = v, u
	}

	return [2]int{u, v}
}

// mult returns the number of edges u->v (or u--v).
func (s *snapshot) mult(u, v int) int {
	return s.pairs[s.key(u, v)]
}

// edgeLabels returns the sorted label multiset of u->v.
func (s *snapshot) edgeLabels(u, v int) []string {
	return s.pairLabels[s.key(u, v)]
}

// degree returns in+out degree.
func (s *snapshot) degree(u int) int {
	return s.out[u] + s.in[u]
}
