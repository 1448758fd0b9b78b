// File: snapshot.go
// Role: Read-only prefetch of a graph into index-based buffers.
// Determinism:
//   - Edge lists per pair are ascending by edge index.
// Concurrency:
//   - Built once per Similarity call; engines never touch *core.Graph afterwards.

package ged

import (
	"github.com/katalvlaran/graphedit/core"
)

// graphData is the engines' view of one graph.
type graphData struct {
	n, m     int
	directed bool
	labels   []string
	edges    []core.Edge

	out []int // out-degree; total degree (loop counted twice) when undirected
	in  []int // in-degree, directed only

	pairs map[[2]int][]int // normalized pair -> edge indices ascending
}

func snapshot(g *core.Graph) *graphData {
	nodes := g.Nodes()
	edges := g.Edges()
	d := &graphData{
		n:        len(nodes),
		m:        len(edges),
		directed: g.Directed(),
		labels:   make([]string, len(nodes)),
		edges:    edges,
		out:      make([]int, len(nodes)),
		in:       make([]int, len(nodes)),
		pairs:    make(map[[2]int][]int, len(edges)),
	}
	for i, n := range nodes {
		d.labels[i] = n.Label
	}
	for _, e := range edges {
		k := d.key(e.From, e.To)
		d.pairs[k] = append(d.pairs[k], e.Index)
		d.out[e.From]++
		if d.directed {
			d.in[e.To]++
		} else {
			d.out[e.To]++
		}
	}

	return d
}

// key normalizes a pair for undirected graphs.
func (d *graphData) key(u, v int) [2]int {
	if !d.directed && v < u {
		u, v = v, u
	}

	return [2]int{u, v}
}

// mult returns the number of u->v (or u--v) edges.
func (d *graphData) mult(u, v int) int {
	return len(d.pairs[d.key(u, v)])
}

// degree returns in+out degree.
func (d *graphData) degree(u int) int {
	return d.out[u] + d.in[u]
}

// denseMult returns the n×n multiplicity table, row-major.
func (d *graphData) denseMult() []int {
	w := make([]int, d.n*d.n)
	for k, list := range d.pairs {
		w[k[0]*d.n+k[1]] = len(list)
		if !d.directed {
			w[k[1]*d.n+k[0]] = len(list)
		}
	}

	return w
}

// sameIndexed reports whether a and b are equal index by index: same node
// count, same pair multiplicities and, when labels matter, same node labels.
func sameIndexed(a, b *graphData, labels bool) bool {
	if a.n != b.n || a.m != b.m || len(a.pairs) != len(b.pairs) {
		return false
	}
	if labels {
		for i := range a.labels {
			if a.labels[i] != b.labels[i] {
				return false
			}
		}
	}
	for k, list := range a.pairs {
		if len(b.pairs[k]) != len(list) {
			return false
		}
	}

	return true
}

func identityMapping(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}

	return m
}

// checkPair validates the graphs handed to Similarity.
func checkPair(g1, g2 *core.Graph) error {
	if g1 == nil || g2 == nil {
		return ErrNilGraph
	}
	if g1.Directed() != g2.Directed() {
		return ErrDirectednessMismatch
	}

	return nil
}
