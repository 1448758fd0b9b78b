package graphio

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/core"
)

// Document is the serialized form of a core.Graph. Node and edge indices are
// implicit: the i-th entry of Nodes is node i, edge endpoints refer to them.
type Document struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Directed bool   `yaml:"directed" json:"directed"`
	Nodes    []Node `yaml:"nodes" json:"nodes"`
	Edges    []Edge `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// Node is one entry of Document.Nodes.
type Node struct {
	Label  string  `yaml:"label" json:"label"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Type   int     `yaml:"type,omitempty" json:"type,omitempty"`
	Age    int     `yaml:"age,omitempty" json:"age,omitempty"`
}

// Edge is one entry of Document.Edges.
type Edge struct {
	From   int     `yaml:"from" json:"from"`
	To     int     `yaml:"to" json:"to"`
	Label  string  `yaml:"label,omitempty" json:"label,omitempty"`
	Weight float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Type   int     `yaml:"type,omitempty" json:"type,omitempty"`
}

// FromGraph captures g. A nil graph yields an empty document.
func FromGraph(g *core.Graph) Document {
	if g == nil {
		return Document{}
	}
	doc := Document{Name: g.Name(), Directed: g.Directed()}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{Label: n.Label, Weight: n.Weight, Type: n.Type, Age: n.Age})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Label: e.Label, Weight: e.Weight, Type: e.Type})
	}

	return doc
}

// Graph builds a fresh graph from d. Edges whose endpoints are not nodes of
// d fail with ErrBadEdge; the graph is checked with CheckConsistency before
// it is returned.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithName(d.Name), core.WithDirected(d.Directed))
	for _, n := range d.Nodes {
		g.AddNode(n.Label, core.WithNodeWeight(n.Weight), core.WithNodeType(n.Type), core.WithNodeAge(n.Age))
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Label, core.WithEdgeWeight(e.Weight), core.WithEdgeType(e.Type)); err != nil {
			return nil, errors.Wrapf(ErrBadEdge, "edge %d (%d->%d): %v", i, e.From, e.To, err)
		}
	}
	if err := g.CheckConsistency(); err != nil {
		return nil, errors.Wrap(err, "graphio")
	}

	return g, nil
}
