// File: mapping.go
// Role: Node mapping -> edit list, shared by every mapping-based engine.
// Determinism:
//   - Operation order is fixed: DELETE_EDGE, DELETE_NODE, RELABEL_NODE,
//     ADD_NODE, ADD_EDGE; within a kind, ascending source/target index.
//   - When parallel edges are partly kept, the lowest-index edges survive.

package ged

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
)

// Deleted marks a source node that maps to no target node.
const Deleted = -1

// MappingCost returns the cost of the edit list induced by mapping.
// See EditListFromMapping.
func MappingCost(g1, g2 *core.Graph, mapping []int, costs costmodel.CostMap, relabel bool) (float64, error) {
	l, err := EditListFromMapping(g1, g2, mapping, costs, relabel)
	if err != nil {
		return 0, err
	}

	return l.Cost(), nil
}

// EditListFromMapping builds the edit list that turns g1 into g2 under the
// node mapping mapping[u] = target index or Deleted. Target nodes without a
// preimage are added. Pair multiplicities decide edge edits: surplus source
// edges are deleted and missing target edges added.
//
// The list is applicable to g1 (see edit.List.Apply) and yields a graph
// isomorphic to g2 (node labels included when relabel is true).
//
// Errors: costmodel sentinels, ErrNilGraph, ErrDirectednessMismatch, ErrInvalidMapping.
func EditListFromMapping(g1, g2 *core.Graph, mapping []int, costs costmodel.CostMap, relabel bool) (*edit.List, error) {
	model, err := costmodel.New(costs, costmodel.Requirements{Relabel: relabel})
	if err != nil {
		return nil, err
	}
	if err = checkPair(g1, g2); err != nil {
		return nil, err
	}
	a, b := snapshot(g1), snapshot(g2)
	if err = validateMapping(mapping, a.n, b.n); err != nil {
		return nil, err
	}

	return buildEditList(a, b, mapping, model), nil
}

func validateMapping(mapping []int, n1, n2 int) error {
	if len(mapping) != n1 {
		return errors.Wrapf(ErrInvalidMapping, "length %d, source has %d nodes", len(mapping), n1)
	}
	used := make([]bool, n2)
	for u, t := range mapping {
		if t == Deleted {
			continue
		}
		if t < 0 || t >= n2 {
			return errors.Wrapf(ErrInvalidMapping, "node %d maps to %d", u, t)
		}
		if used[t] {
			return errors.Wrapf(ErrInvalidMapping, "target %d used twice", t)
		}
		used[t] = true
	}

	return nil
}

// buildEditList assumes a valid mapping.
func buildEditList(a, b *graphData, mapping []int, model costmodel.Model) *edit.List {
	list := edit.NewList()
	pre := make([]int, b.n)
	for t := range pre {
		pre[t] = Deleted
	}
	for u, t := range mapping {
		if t != Deleted {
			pre[t] = u
		}
	}

	// DELETE_EDGE: a source edge survives iff it is among the first k
	// edges of its pair, k being the image pair's multiplicity.
	delCost := model.Cost(edit.DeleteEdge)
	for _, e := range a.edges {
		if !keptEdge(a, b, e, mapping) {
			list.Add(edit.NewDeleteEdge(e.Index, delCost))
		}
	}

	for u, t := range mapping {
		if t == Deleted {
			list.Add(edit.NewDeleteNode(u, model.Cost(edit.DeleteNode)))
		}
	}

	if model.Relabel() {
		for u, t := range mapping {
			if t != Deleted && a.labels[u] != b.labels[t] {
				list.Add(edit.NewRelabelNode(u, b.labels[t], model.Cost(edit.RelabelNode)))
			}
		}
	}

	// ADD_NODE: the k-th added node gets extended id n1+k.
	ext := make([]int, b.n)
	next := a.n
	for t := 0; t < b.n; t++ {
		if pre[t] != Deleted {
			ext[t] = pre[t]
			continue
		}
		ext[t] = next
		next++
		list.Add(edit.NewAddNode(b.labels[t], model.Cost(edit.AddNode)))
	}

	addCost := model.Cost(edit.AddEdge)
	for _, e := range b.edges {
		if !coveredEdge(a, b, e, pre) {
			list.Add(edit.NewAddEdge(ext[e.From], ext[e.To], e.Label, addCost))
		}
	}

	return list
}

// keptEdge reports whether source edge e survives under mapping.
func keptEdge(a, b *graphData, e core.Edge, mapping []int) bool {
	tu, tv := mapping[e.From], mapping[e.To]
	if tu == Deleted || tv == Deleted {
		return false
	}
	k := a.key(e.From, e.To)

	return rank(a.pairs[k], e.Index) < b.mult(tu, tv)
}

// coveredEdge reports whether target edge e is matched by a kept source edge.
func coveredEdge(a, b *graphData, e core.Edge, pre []int) bool {
	su, sv := pre[e.From], pre[e.To]
	if su == Deleted || sv == Deleted {
		return false
	}

	return rank(b.pairs[b.key(e.From, e.To)], e.Index) < a.mult(su, sv)
}

// rank returns the position of idx in the ascending list (or len when absent).
func rank(list []int, idx int) int {
	for i, v := range list {
		if v == idx {
			return i
		}
	}

	return len(list)
}
