// File: apply.go
// Role: Replay of an edit list against a graph, producing a new graph.
// Determinism:
//   - Survivors are emitted in extended-id order, so equal inputs yield equal graphs.
// Concurrency:
//   - The input graph is only read (one snapshot); the result is unshared.

package edit

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/core"
)

// slotNode is one entry of the extended node table.
type slotNode struct {
	node  core.Node
	alive bool
	live  int // live incident edges
}

// slotEdge is one entry of the extended edge table.
type slotEdge struct {
	edge  core.Edge
	alive bool
}

// replay holds the extended id space while operations run.
type replay struct {
	nodes []slotNode
	edges []slotEdge
}

// Apply replays the list against g and returns a new, independent graph.
// g is never modified.
//
// Id space: with n = g.NodeCount() and m = g.EdgeCount() fixed before the
// first operation,
//   - node ids < n are g's node indices and are never renumbered during replay;
//   - the k-th ADD_NODE (k = 0,1,...) creates node id n+k;
//   - edge ids < m are g's edge indices; the k-th ADD_EDGE creates edge id m+k.
//
// After replay the surviving nodes are compacted in id order (original nodes
// first, then added ones) and edges follow in id order.
//
// Errors (wrapped with the failing operation):
//   - ErrUnknownID for ids outside the space or nodes already deleted;
//   - ErrAlreadyDeleted for a second deletion of the same node or edge;
//   - ErrNodeHasEdges when deleting a node that still has live edges;
//   - ErrUnknownKind for an invalid operation kind;
//   - core.ErrNilGraph when g is nil.
//
// Complexity: O(V + E + len(l)).
func (l *List) Apply(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, errors.Wrap(core.ErrNilGraph, "edit: apply")
	}
	r := newReplay(g)
	if l != nil {
		for i, op := range l.ops {
			if err := r.step(op); err != nil {
				return nil, errors.Wrapf(err, "op %d %s", i, op)
			}
		}
	}

	return r.materialize(g.Name(), g.Directed())
}

func newReplay(g *core.Graph) *replay {
	nodes := g.Nodes()
	edges := g.Edges()
	r := &replay{
		nodes: make([]slotNode, len(nodes)),
		edges: make([]slotEdge, len(edges)),
	}
	for i, n := range nodes {
		r.nodes[i] = slotNode{node: n, alive: true}
	}
	for i, e := range edges {
		r.edges[i] = slotEdge{edge: e, alive: true}
		r.touch(e, 1)
	}

	return r
}

// touch adjusts live incident counts of e's endpoints by delta.
func (r *replay) touch(e core.Edge, delta int) {
	r.nodes[e.From].live += delta
	if e.To != e.From {
		r.nodes[e.To].live += delta
	}
}

func (r *replay) liveNode(id int) bool {
	return id >= 0 && id < len(r.nodes) && r.nodes[id].alive
}

func (r *replay) step(op Operation) error {
	switch op.kind {
	case AddNode:
		r.nodes = append(r.nodes, slotNode{
			node:  core.Node{Index: len(r.nodes), Label: op.label},
			alive: true,
		})

	case DeleteNode:
		if op.id < 0 || op.id >= len(r.nodes) {
			return errors.Wrapf(ErrUnknownID, "node %d", op.id)
		}
		s := &r.nodes[op.id]
		if !s.alive {
			return errors.Wrapf(ErrAlreadyDeleted, "node %d", op.id)
		}
		if s.live > 0 {
			return errors.Wrapf(ErrNodeHasEdges, "node %d has %d", op.id, s.live)
		}
		s.alive = false

	case RelabelNode:
		if !r.liveNode(op.id) {
			return errors.Wrapf(ErrUnknownID, "node %d", op.id)
		}
		r.nodes[op.id].node.Label = op.label

	case AddEdge:
		if !r.liveNode(op.from) || !r.liveNode(op.to) {
			return errors.Wrapf(ErrUnknownID, "endpoints %d->%d", op.from, op.to)
		}
		e := core.Edge{Index: len(r.edges), Label: op.label, From: op.from, To: op.to}
		r.edges = append(r.edges, slotEdge{edge: e, alive: true})
		r.touch(e, 1)

	case DeleteEdge:
		if op.id < 0 || op.id >= len(r.edges) {
			return errors.Wrapf(ErrUnknownID, "edge %d", op.id)
		}
		s := &r.edges[op.id]
		if !s.alive {
			return errors.Wrapf(ErrAlreadyDeleted, "edge %d", op.id)
		}
		s.alive = false
		r.touch(s.edge, -1)

	default:
		return errors.Wrapf(ErrUnknownKind, "%d", int(op.kind))
	}

	return nil
}

// materialize compacts surviving slots into a fresh graph.
func (r *replay) materialize(name string, directed bool) (*core.Graph, error) {
	out := core.NewGraph(core.WithDirected(directed), core.WithName(name))
	remap := make([]int, len(r.nodes))
	var i int
	for i = range r.nodes {
		s := &r.nodes[i]
		if !s.alive {
			remap[i] = NoID
			continue
		}
		remap[i] = out.AddNode(s.node.Label,
			core.WithNodeWeight(s.node.Weight),
			core.WithNodeType(s.node.Type),
			core.WithNodeAge(s.node.Age))
	}
	for i = range r.edges {
		s := &r.edges[i]
		if !s.alive {
			continue
		}
		e := s.edge
		if _, err := out.AddEdge(remap[e.From], remap[e.To], e.Label,
			core.WithEdgeWeight(e.Weight), core.WithEdgeType(e.Type)); err != nil {
			return nil, errors.Wrapf(err, "edit: materialize edge %d", i)
		}
	}

	return out, nil
}
