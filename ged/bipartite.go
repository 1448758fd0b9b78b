// Package ged - Bipartite (Riesen-Bunke) approximation.
//
// Rationale (succinct):
//  1. Build the (n+m)×(n+m) cost matrix
//
//	  | substitution (n×m) | deletion diagonal (n×n) |
//	  | insertion diag (m×m)| zeros (m×n)            |
//
//     where each node cost carries half of its incident edge cost estimate
//     (every edge is shared by two endpoints).
//  2. Solve the linear assignment exactly with assignment.Solve (O((n+m)³)).
//  3. Read the node mapping off the top-left block and derive the true edit
//     list (and cost) from it; the matrix value is only a guide.
//  4. Solve g2→g1 as well, invert that mapping and keep whichever of the two
//     edit lists is cheaper (g1→g2 on ties). The result is then symmetric
//     whenever the cost table is.
//  5. Graphs identical index by index skip the solve and use the identity,
//     since equal-cost ties in the matrix need not pick it.
//
// Off-diagonal cells of the deletion/insertion blocks are forbidden. They hold
// a finite sentinel larger than any sentinel-free assignment, since the matrix
// rejects ±Inf.

package ged

import (
	"github.com/katalvlaran/graphedit/assignment"
	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
	"github.com/katalvlaran/graphedit/matrix"
)

// Bipartite approximates GED by a minimum-cost node assignment.
// The result is an upper bound on the exact distance and its edit list is
// applicable.
type Bipartite struct {
	base
}

// NewBipartite validates costs (RELABEL_NODE iff opts.Relabel).
func NewBipartite(costs costmodel.CostMap, opts Options) (*Bipartite, error) {
	b, err := newBase("bipartite", costs, opts)
	if err != nil {
		return nil, err
	}

	return &Bipartite{base: b}, nil
}

// Similarity implements Engine.
func (bp *Bipartite) Similarity(g1, g2 *core.Graph) (float64, error) {
	a, b, err := bp.prepare(g1, g2)
	if err != nil {
		return 0, err
	}
	var list *edit.List
	if sameIndexed(a, b, bp.model.Relabel()) {
		list = buildEditList(a, b, identityMapping(a.n), bp.model)
	} else if _, list, err = symmetricMapping(a, b, bp.model); err != nil {
		return 0, err
	}
	bp.log.WithField("nodes", a.n+b.n).WithField("cost", list.Cost()).Debug("bipartite assignment solved")

	return bp.finish(list), nil
}

// localEdgeCost estimates the edge edits implied by pairing u (in a) with t
// (in b): half the degree differences, per direction when directed.
func localEdgeCost(a, b *graphData, u, t int, model costmodel.Model) float64 {
	c := model.EdgeDiff(a.out[u], b.out[t])
	if a.directed {
		c += model.EdgeDiff(a.in[u], b.in[t])
	}

	return c / 2
}

// symmetricMapping solves the assignment in both directions and returns the
// mapping (a to b) with the cheaper edit list.
func symmetricMapping(a, b *graphData, model costmodel.Model) ([]int, *edit.List, error) {
	forward, err := bipartiteMapping(a, b, model)
	if err != nil {
		return nil, nil, err
	}
	backward, err := bipartiteMapping(b, a, model)
	if err != nil {
		return nil, nil, err
	}
	best := buildEditList(a, b, forward, model)
	inverse := invertMapping(backward, a.n)
	if alt := buildEditList(a, b, inverse, model); alt.Cost() < best.Cost() {
		return inverse, alt, nil
	}

	return forward, best, nil
}

// invertMapping turns a b-to-a mapping into an a-to-b one over n source nodes.
func invertMapping(mapping []int, n int) []int {
	inv := make([]int, n)
	for u := range inv {
		inv[u] = Deleted
	}
	for t, u := range mapping {
		if u != Deleted {
			inv[u] = t
		}
	}

	return inv
}

// bipartiteMapping returns mapping[u] = target or Deleted.
func bipartiteMapping(a, b *graphData, model costmodel.Model) ([]int, error) {
	n, m := a.n, b.n
	size := n + m
	cost, err := matrix.NewSquare(size)
	if err != nil {
		return nil, err
	}
	delE, addE := model.Cost(edit.DeleteEdge), model.Cost(edit.AddEdge)

	var i, j int
	var maxCell float64
	set := func(r, c int, v float64) error {
		if v > maxCell {
			maxCell = v
		}

		return cost.Set(r, c, v)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			v := model.NodeSubstitution(a.labels[i], b.labels[j]) + localEdgeCost(a, b, i, j, model)
			if err = set(i, j, v); err != nil {
				return nil, err
			}
		}
		del := model.Cost(edit.DeleteNode) + float64(a.degree(i))*delE/2
		if err = set(i, m+i, del); err != nil {
			return nil, err
		}
	}
	for j = 0; j < m; j++ {
		ins := model.Cost(edit.AddNode) + float64(b.degree(j))*addE/2
		if err = set(n+j, j, ins); err != nil {
			return nil, err
		}
	}

	// forbidden cells
	forbidden := 1 + float64(size)*(maxCell+1)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j != i {
				if err = cost.Set(i, m+j, forbidden); err != nil {
					return nil, err
				}
			}
		}
	}
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if j != i {
				if err = cost.Set(n+i, j, forbidden); err != nil {
					return nil, err
				}
			}
		}
	}

	assign, _, err := assignment.Solve(cost)
	if err != nil {
		return nil, err
	}
	mapping := make([]int, n)
	for i = 0; i < n; i++ {
		if assign[i] < m {
			mapping[i] = assign[i]
		} else {
			mapping[i] = Deleted
		}
	}

	return mapping, nil
}
