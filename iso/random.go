package iso

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/graphedit/core"
)

// defaultSeed replaces seed 0 so "no seed" is still reproducible.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// GenerateRandomIsomorphicGraph returns a copy of g with node indices and
// edge order permuted by a seeded permutation. When relabel is true every
// node gets a fresh label "node <i>" by its new index, so the copy is
// isomorphic to g only when labels are ignored.
//
// Edge labels, weights, types and node attributes travel with their node or edge.
// Returns nil for a nil graph.
func GenerateRandomIsomorphicGraph(g *core.Graph, seed int64, relabel bool) *core.Graph {
	if g == nil {
		return nil
	}
	rng := rngFromSeed(seed)
	nodes := g.Nodes()
	edges := g.Edges()

	perm := rng.Perm(len(nodes)) // old index -> new index
	inv := make([]int, len(nodes))
	for old, nw := range perm {
		inv[nw] = old
	}

	out := core.NewGraph(core.WithDirected(g.Directed()), core.WithName(g.Name()))
	for nw := range inv {
		n := nodes[inv[nw]]
		label := n.Label
		if relabel {
			label = "node " + strconv.Itoa(nw)
		}
		out.AddNode(label, core.WithNodeWeight(n.Weight), core.WithNodeType(n.Type), core.WithNodeAge(n.Age))
	}
	for _, ei := range rng.Perm(len(edges)) {
		e := edges[ei]
		from, to := perm[e.From], perm[e.To]
		if !g.Directed() && rng.Intn(2) == 1 {
			from, to = to, from
		}
		// endpoints are valid by construction
		_, _ = out.AddEdge(from, to, e.Label, core.WithEdgeWeight(e.Weight), core.WithEdgeType(e.Type))
	}

	return out
}
