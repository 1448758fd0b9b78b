// File: list.go
// Role: Ordered, costed sequence of edit operations.
// Determinism:
//   - Cost is accumulated in insertion order, so equal lists report bit-identical costs.
//   - Filters preserve list order.
// Concurrency:
//   - Not safe for concurrent mutation; engines hand out a fresh List per run.

package edit

import (
	"fmt"
	"strings"
)

// List is an ordered sequence of Operations with a running cost.
// The zero value is an empty list ready to use.
type List struct {
	ops  []Operation
	cost float64
}

// NewList returns a list holding ops in order.
func NewList(ops ...Operation) *List {
	l := &List{ops: make([]Operation, 0, len(ops))}
	for _, op := range ops {
		l.Add(op)
	}

	return l
}

// Add appends op and adds its cost to the running sum.
func (l *List) Add(op Operation) {
	l.ops = append(l.ops, op)
	l.cost += op.cost
}

// Cost returns the sum of member costs. A nil list costs 0.
func (l *List) Cost() float64 {
	if l == nil {
		return 0
	}

	return l.cost
}

// Len returns the number of operations.
func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.ops)
}

// At returns the i-th operation; it panics when i is out of range, like a slice.
func (l *List) At(i int) Operation { return l.ops[i] }

// Operations returns a copy of the operations in order.
func (l *List) Operations() []Operation {
	if l == nil {
		return nil
	}
	out := make([]Operation, len(l.ops))
	copy(out, l.ops)

	return out
}

// OfKind returns the operations of kind k in list order.
func (l *List) OfKind(k Kind) []Operation {
	var out []Operation
	if l == nil {
		return out
	}
	for _, op := range l.ops {
		if op.kind == k {
			out = append(out, op)
		}
	}

	return out
}

// DeletedNodes returns the DELETE_NODE operations in list order.
func (l *List) DeletedNodes() []Operation { return l.OfKind(DeleteNode) }

// AddedNodes returns the ADD_NODE operations in list order.
func (l *List) AddedNodes() []Operation { return l.OfKind(AddNode) }

// DeletedEdges returns the DELETE_EDGE operations in list order.
func (l *List) DeletedEdges() []Operation { return l.OfKind(DeleteEdge) }

// AddedEdges returns the ADD_EDGE operations in list order.
func (l *List) AddedEdges() []Operation { return l.OfKind(AddEdge) }

// RelabeledNodes returns the RELABEL_NODE operations in list order.
func (l *List) RelabeledNodes() []Operation { return l.OfKind(RelabelNode) }

// CountByKind returns per-kind operation counts indexed by Kind.
func (l *List) CountByKind() [NumKinds]int {
	var c [NumKinds]int
	if l == nil {
		return c
	}
	for _, op := range l.ops {
		if op.kind.Valid() {
			c[op.kind]++
		}
	}

	return c
}

// String renders a header line followed by one indented operation per line:
//
//	edits=2 cost=6
//	  0: DELETE_EDGE(id=0) cost=4
//	  1: DELETE_NODE(id=1) cost=2
func (l *List) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "edits=%d cost=%g\n", l.Len(), l.Cost())
	if l == nil {
		return sb.String()
	}
	for i, op := range l.ops {
		fmt.Fprintf(&sb, "  %d: %s\n", i, op)
	}

	return sb.String()
}
