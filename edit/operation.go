package edit

import (
	"fmt"
	"strconv"
)

// NoID marks an unused id or endpoint field.
const NoID = -1

// Operation is an immutable edit step. Fields are read through accessors;
// construct with NewAddNode, NewDeleteNode, NewAddEdge, NewDeleteEdge or
// NewRelabelNode.
//
// Field usage by kind:
//
//	ADD_NODE      label
//	DELETE_NODE   id
//	RELABEL_NODE  id, label
//	ADD_EDGE      from, to, label
//	DELETE_EDGE   id
//
// Ids live in the extended id space described on List.Apply.
type Operation struct {
	kind  Kind
	cost  float64
	id    int
	label string
	from  int
	to    int
}

// NewAddNode creates a node labeled label.
func NewAddNode(label string, cost float64) Operation {
	return Operation{kind: AddNode, cost: cost, id: NoID, label: label, from: NoID, to: NoID}
}

// NewDeleteNode removes node id.
func NewDeleteNode(id int, cost float64) Operation {
	return Operation{kind: DeleteNode, cost: cost, id: id, from: NoID, to: NoID}
}

// NewRelabelNode sets the label of node id.
func NewRelabelNode(id int, label string, cost float64) Operation {
	return Operation{kind: RelabelNode, cost: cost, id: id, label: label, from: NoID, to: NoID}
}

// NewAddEdge creates an edge from->to labeled label.
func NewAddEdge(from, to int, label string, cost float64) Operation {
	return Operation{kind: AddEdge, cost: cost, id: NoID, label: label, from: from, to: to}
}

// NewDeleteEdge removes edge id.
func NewDeleteEdge(id int, cost float64) Operation {
	return Operation{kind: DeleteEdge, cost: cost, id: id, from: NoID, to: NoID}
}

// Kind returns the operation kind.
func (o Operation) Kind() Kind { return o.kind }

// Cost returns the charged cost.
func (o Operation) Cost() float64 { return o.cost }

// ID returns the node or edge id the operation targets, NoID for additions.
func (o Operation) ID() int { return o.id }

// Label returns the new label (ADD_NODE, ADD_EDGE, RELABEL_NODE).
func (o Operation) Label() string { return o.label }

// From returns the first ADD_EDGE endpoint, NoID otherwise.
func (o Operation) From() int { return o.from }

// To returns the second ADD_EDGE endpoint, NoID otherwise.
func (o Operation) To() int { return o.to }

// Endpoints returns From and To.
func (o Operation) Endpoints() (int, int) { return o.from, o.to }

// String renders the operation, e.g. `DELETE_NODE(id=0) cost=2`.
func (o Operation) String() string {
	var args string
	switch o.kind {
	case AddNode:
		args = "label=" + strconv.Quote(o.label)
	case DeleteNode, DeleteEdge:
		args = "id=" + strconv.Itoa(o.id)
	case RelabelNode:
		args = fmt.Sprintf("id=%d, label=%q", o.id, o.label)
	case AddEdge:
		args = fmt.Sprintf("%d->%d, label=%q", o.from, o.to, o.label)
	}

	return fmt.Sprintf("%s(%s) cost=%g", o.kind, args, o.cost)
}
