// Package costmodel validates caller-supplied edit costs and freezes them into
// an immutable Model.
//
// Validation is fail-fast and never substitutes defaults:
//
//   - ADD_NODE, DELETE_NODE, ADD_EDGE and DELETE_EDGE are always required.
//   - RELABEL_NODE is required when Requirements.Relabel is set and rejected
//     otherwise.
//   - Unknown kinds and negative, NaN or infinite costs are rejected.
//
// Errors:
//
//	ErrMissingCost    - a required kind has no entry.
//	ErrUnexpectedCost - an entry is present for a kind the configuration does not use.
//	ErrInvalidCost    - an entry is negative, NaN or infinite.
//	ErrUnknownKind    - a key is outside the edit.Kind set.
package costmodel

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphedit/edit"
)

var (
	// ErrMissingCost indicates a required kind is absent from the cost map.
	ErrMissingCost = errors.New("costmodel: missing cost")

	// ErrUnexpectedCost indicates an entry for a kind the configuration forbids.
	ErrUnexpectedCost = errors.New("costmodel: unexpected cost")

	// ErrInvalidCost indicates a negative, NaN or infinite cost.
	ErrInvalidCost = errors.New("costmodel: invalid cost")

	// ErrUnknownKind is edit.ErrUnknownKind; either matches with errors.Is.
	ErrUnknownKind = edit.ErrUnknownKind
)

// CostMap is the caller-facing cost input keyed by operation kind.
type CostMap map[edit.Kind]float64

// Requirements selects which kinds a configuration uses.
type Requirements struct {
	// Relabel enables RELABEL_NODE; node labels are ignored when false.
	Relabel bool
}

// Required returns the kinds a configuration must supply, in Kind order.
func (r Requirements) Required() []edit.Kind {
	kinds := []edit.Kind{edit.AddNode, edit.DeleteNode, edit.AddEdge, edit.DeleteEdge}
	if r.Relabel {
		kinds = append(kinds, edit.RelabelNode)
	}

	return kinds
}

// allows reports whether k may appear under r.
func (r Requirements) allows(k edit.Kind) bool {
	return k != edit.RelabelNode || r.Relabel
}

// Model is a validated, immutable cost table indexed by edit.Kind.
// The zero Model is not valid; obtain one from New.
type Model struct {
	costs   [edit.NumKinds]float64
	relabel bool
}

// New validates costs against req and returns the frozen Model.
//
// Keys are checked in ascending Kind order, so the first reported error is
// deterministic. Missing kinds are reported after every present entry passed.
//
// Complexity: O(K log K) for K entries.
func New(costs CostMap, req Requirements) (Model, error) {
	var m Model
	m.relabel = req.Relabel

	keys := make([]edit.Kind, 0, len(costs))
	for k := range costs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		v := costs[k]
		switch {
		case !k.Valid():
			return Model{}, errors.Wrapf(ErrUnknownKind, "kind %d", int(k))
		case math.IsNaN(v) || math.IsInf(v, 0) || v < 0:
			return Model{}, errors.Wrapf(ErrInvalidCost, "%s=%v", k, v)
		case !req.allows(k):
			return Model{}, errors.Wrapf(ErrUnexpectedCost, "%s given but relabeling is disabled", k)
		}
		m.costs[k] = v
	}
	for _, k := range req.Required() {
		if _, ok := costs[k]; !ok {
			return Model{}, errors.Wrapf(ErrMissingCost, "%s", k)
		}
	}

	return m, nil
}

// MustNew is New that panics on error; for tests and static tables.
func MustNew(costs CostMap, req Requirements) Model {
	m, err := New(costs, req)
	if err != nil {
		panic(err)
	}

	return m
}

// Cost returns the cost of kind k (0 for kinds the model does not use).
func (m Model) Cost(k edit.Kind) float64 {
	if !k.Valid() {
		return 0
	}

	return m.costs[k]
}

// Relabel reports whether node relabeling is enabled.
func (m Model) Relabel() bool { return m.relabel }

// NodeSubstitution returns the cost of mapping a node labeled a onto one
// labeled b: the relabel cost when relabeling is enabled and the labels
// differ, 0 otherwise.
func (m Model) NodeSubstitution(a, b string) float64 {
	if m.relabel && a != b {
		return m.costs[edit.RelabelNode]
	}

	return 0
}

// EdgeDiff returns the cost of turning have parallel edges into want:
// surplus edges are deleted, missing ones added.
func (m Model) EdgeDiff(have, want int) float64 {
	switch {
	case have > want:
		return float64(have-want) * m.costs[edit.DeleteEdge]
	case want > have:
		return float64(want-have) * m.costs[edit.AddEdge]
	}

	return 0
}

// NodeDiff returns the cost of turning have nodes into want by deletions or additions.
func (m Model) NodeDiff(have, want int) float64 {
	switch {
	case have > want:
		return float64(have-want) * m.costs[edit.DeleteNode]
	case want > have:
		return float64(want-have) * m.costs[edit.AddNode]
	}

	return 0
}

// MismatchCost is the cheapest way to fix one unavoidable label mismatch:
// min(relabel, delete+add). It is 0 when relabeling is disabled.
func (m Model) MismatchCost() float64 {
	if !m.relabel {
		return 0
	}

	return math.Min(m.costs[edit.RelabelNode], m.costs[edit.DeleteNode]+m.costs[edit.AddNode])
}

// CostMap returns a copy of the validated entries.
func (m Model) CostMap() CostMap {
	out := make(CostMap, edit.NumKinds)
	for _, k := range (Requirements{Relabel: m.relabel}).Required() {
		out[k] = m.costs[k]
	}

	return out
}
