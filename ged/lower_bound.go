package ged

import (
	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
	"github.com/katalvlaran/graphedit/iso"
)

// LowerBound is the counting estimate
//
//	NodeDiff(n1, n2) + EdgeDiff(m1, m2) + mismatches · min(relabel, delete+add)
//
// where mismatches = max(0, min(n1,n2) − common labels), counted only when
// relabeling is enabled. With the cost structure used here it never exceeds
// the exact distance; it equals the exact engine's root heuristic.
//
// Its edit list holds one estimated operation per counted unit (ids NoID)
// and is not applicable. Complexity: O(V log V).
type LowerBound struct {
	base
}

// NewLowerBound validates costs (RELABEL_NODE iff opts.Relabel).
func NewLowerBound(costs costmodel.CostMap, opts Options) (*LowerBound, error) {
	b, err := newBase("lowerbound", costs, opts)
	if err != nil {
		return nil, err
	}

	return &LowerBound{base: b}, nil
}

// Similarity implements Engine.
func (lb *LowerBound) Similarity(g1, g2 *core.Graph) (float64, error) {
	if err := checkPair(g1, g2); err != nil {
		lb.last = nil
		return 0, err
	}
	list := edit.NewList()
	n1, n2 := g1.NodeCount(), g2.NodeCount()
	m1, m2 := g1.EdgeCount(), g2.EdgeCount()

	for i := n2; i < n1; i++ {
		list.Add(edit.NewDeleteNode(edit.NoID, lb.model.Cost(edit.DeleteNode)))
	}
	for i := n1; i < n2; i++ {
		list.Add(edit.NewAddNode("", lb.model.Cost(edit.AddNode)))
	}
	for i := m2; i < m1; i++ {
		list.Add(edit.NewDeleteEdge(edit.NoID, lb.model.Cost(edit.DeleteEdge)))
	}
	for i := m1; i < m2; i++ {
		list.Add(edit.NewAddEdge(edit.NoID, edit.NoID, "", lb.model.Cost(edit.AddEdge)))
	}
	if lb.model.Relabel() {
		common := iso.CommonLabels(iso.LabelHistogram(g1.Labels()), iso.LabelHistogram(g2.Labels()))
		for i := common; i < min(n1, n2); i++ {
			list.Add(edit.NewRelabelNode(edit.NoID, "", lb.model.MismatchCost()))
		}
	}
	lb.log.WithField("cost", list.Cost()).Debug("lower bound")

	return lb.finish(list), nil
}
