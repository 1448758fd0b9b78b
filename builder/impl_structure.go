// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// impl_structure.go: explicit structures from label lists and edge specs.
//
// Contract:
//   • Nodes are appended in label order; EdgeSpec endpoints are relative to
//     the first appended node.
//   • Out-of-range endpoints fail with ErrBadEdgeSpec before any edge is added.

package builder

import "github.com/katalvlaran/graphedit/core"

const methodStructure = "Structure"

// EdgeSpec describes one edge of an explicit structure.
type EdgeSpec struct {
	From  int
	To    int
	Label string
}

// E is shorthand for an unlabeled EdgeSpec.
func E(from, to int) EdgeSpec { return EdgeSpec{From: from, To: to} }

// Structure returns a Constructor appending the given nodes and edges verbatim.
func Structure(labels []string, edges []EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := len(labels)
		for i, e := range edges {
			if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
				return builderErrorf(methodStructure, ErrBadEdgeSpec, "edge %d (%d,%d) with %d nodes", i, e.From, e.To, n)
			}
		}
		base := g.NodeCount()
		for _, l := range labels {
			g.AddNode(l)
		}
		for _, e := range edges {
			if _, err := g.AddEdge(base+e.From, base+e.To, e.Label); err != nil {
				return builderErrorf(methodStructure, err, "AddEdge(%d→%d)", e.From, e.To)
			}
		}

		return nil
	}
}

// NewStructure builds a named graph from labels and edges in one call.
func NewStructure(name string, directed bool, labels []string, edges []EdgeSpec) (*core.Graph, error) {
	return BuildGraph(
		[]core.GraphOption{core.WithName(name), core.WithDirected(directed)},
		nil,
		Structure(labels, edges),
	)
}

// MustStructure is NewStructure for fixtures known to be valid; it panics on error.
func MustStructure(name string, directed bool, labels []string, edges []EdgeSpec) *core.Graph {
	g, err := NewStructure(name, directed, labels, edges)
	if err != nil {
		panic(err)
	}

	return g
}
