package ged

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
)

// Hausdorff is a one-sided estimate: every source node independently picks
// its cheapest target node or deletion, with no bijection constraint. Target
// nodes nobody picked are charged as insertions.
//
// Components: Options.NodeCosts charges node substitution/deletion/insertion,
// Options.EdgeCosts charges half the incident edge differences; at least one
// must be set. Options.Strict assigns greedily in source order and never
// reuses a target.
//
// The estimate is asymmetric (Similarity(g1,g2) may differ from
// Similarity(g2,g1)) and has no ≤ or ≥ guarantee against the exact distance.
// Its edit list records the estimated charge per node and is not applicable:
// ids are source/target node indices and edge operations carry NoID.
type Hausdorff struct {
	base
}

// NewHausdorff validates costs (RELABEL_NODE iff opts.Relabel) and requires
// opts.NodeCosts or opts.EdgeCosts.
func NewHausdorff(costs costmodel.CostMap, opts Options) (*Hausdorff, error) {
	if !opts.NodeCosts && !opts.EdgeCosts {
		return nil, errors.Wrap(ErrInvalidOptions, "hausdorff: enable NodeCosts, EdgeCosts or both")
	}
	b, err := newBase("hausdorff", costs, opts)
	if err != nil {
		return nil, err
	}

	return &Hausdorff{base: b}, nil
}

// Similarity implements Engine. Graphs equal index by index score 0.
//
// Complexity: O(n·m).
func (h *Hausdorff) Similarity(g1, g2 *core.Graph) (float64, error) {
	a, b, err := h.prepare(g1, g2)
	if err != nil {
		return 0, err
	}
	list := edit.NewList()
	if sameIndexed(a, b, h.model.Relabel()) {
		return h.finish(list), nil
	}
	picked := make([]bool, b.n)

	for u := 0; u < a.n; u++ {
		best := Deleted
		bestCost := h.deletion(a, u)
		for t := 0; t < b.n; t++ {
			if h.opts.Strict && picked[t] {
				continue
			}
			c := h.substitution(a, b, u, t)
			// on ties an unpicked target wins
			if c < bestCost || (c == bestCost && best != Deleted && picked[best] && !picked[t]) {
				best, bestCost = t, c
			}
		}
		if best == Deleted {
			list.Add(edit.NewDeleteNode(u, bestCost))
			continue
		}
		picked[best] = true
		h.witnessSubstitution(list, a, b, u, best)
	}
	for t := 0; t < b.n; t++ {
		if !picked[t] {
			list.Add(edit.NewAddNode(b.labels[t], h.insertion(b, t)))
		}
	}
	h.log.WithField("strict", h.opts.Strict).WithField("cost", list.Cost()).Debug("hausdorff estimate")

	return h.finish(list), nil
}

func (h *Hausdorff) nodePart(a, b *graphData, u, t int) float64 {
	if !h.opts.NodeCosts {
		return 0
	}

	return h.model.NodeSubstitution(a.labels[u], b.labels[t])
}

func (h *Hausdorff) edgePart(a, b *graphData, u, t int) float64 {
	if !h.opts.EdgeCosts {
		return 0
	}

	return localEdgeCost(a, b, u, t, h.model)
}

func (h *Hausdorff) substitution(a, b *graphData, u, t int) float64 {
	return h.nodePart(a, b, u, t) + h.edgePart(a, b, u, t)
}

func (h *Hausdorff) deletion(a *graphData, u int) float64 {
	var c float64
	if h.opts.NodeCosts {
		c += h.model.Cost(edit.DeleteNode)
	}
	if h.opts.EdgeCosts {
		c += float64(a.degree(u)) * h.model.Cost(edit.DeleteEdge) / 2
	}

	return c
}

func (h *Hausdorff) insertion(b *graphData, t int) float64 {
	var c float64
	if h.opts.NodeCosts {
		c += h.model.Cost(edit.AddNode)
	}
	if h.opts.EdgeCosts {
		c += float64(b.degree(t)) * h.model.Cost(edit.AddEdge) / 2
	}

	return c
}

// witnessSubstitution records the non-zero parts of pairing u with t.
func (h *Hausdorff) witnessSubstitution(list *edit.List, a, b *graphData, u, t int) {
	if c := h.nodePart(a, b, u, t); c > 0 {
		list.Add(edit.NewRelabelNode(u, b.labels[t], c))
	}
	c := h.edgePart(a, b, u, t)
	if c <= 0 {
		return
	}
	if a.degree(u) > b.degree(t) {
		list.Add(edit.NewDeleteEdge(edit.NoID, c))
	} else {
		list.Add(edit.NewAddEdge(edit.NoID, edit.NoID, "", c))
	}
}
