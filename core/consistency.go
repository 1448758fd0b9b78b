// SPDX-License-Identifier: MIT
//
// File: consistency.go
// Role: Explicit structural validation of the node/edge/adjacency invariant.
// Policy:
//   - Mutators keep adjacency in sync but never re-verify it; callers that
//     construct or receive graphs from untrusted code call CheckConsistency.
//   - Errors are sentinels wrapped with the first offending index.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// CheckConsistency verifies the core invariants of g:
//   - every node and edge Index equals its slice position (ErrIndexMismatch);
//   - every edge endpoint refers to an existing node (ErrDanglingEdge);
//   - the adjacency lists contain exactly the incident edges implied by the
//     edge list, each once (ErrAdjacencyMismatch).
//
// Implementation:
//   - Stage 1: Index scan over nodes and edges.
//   - Stage 2: Endpoint range scan.
//   - Stage 3: Recompute expected adjacency and compare per node as sorted lists.
//
// Returns nil when the graph is consistent; ErrNilGraph for a nil receiver.
//
// Complexity: O(V + E log E).
func (g *Graph) CheckConsistency() error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	var i int
	for i = range g.nodes {
		if g.nodes[i] == nil || g.nodes[i].Index != i {
			return errors.Wrapf(ErrIndexMismatch, "node at position %d", i)
		}
	}
	n := len(g.nodes)
	var e *Edge
	for i, e = range g.edges {
		if e == nil || e.Index != i {
			return errors.Wrapf(ErrIndexMismatch, "edge at position %d", i)
		}
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return errors.Wrapf(ErrDanglingEdge, "edge %d (%d,%d) with %d nodes", i, e.From, e.To, n)
		}
	}

	if len(g.out) != n || (g.directed && len(g.in) != n) {
		return errors.Wrapf(ErrAdjacencyMismatch, "adjacency sized for %d nodes, graph has %d", len(g.out), n)
	}

	wantOut := make([][]int, n)
	var wantIn [][]int
	if g.directed {
		wantIn = make([][]int, n)
	}
	for _, e = range g.edges {
		wantOut[e.From] = append(wantOut[e.From], e.Index)
		if g.directed {
			wantIn[e.To] = append(wantIn[e.To], e.Index)
		} else if e.From != e.To {
			wantOut[e.To] = append(wantOut[e.To], e.Index)
		}
	}
	for i = 0; i < n; i++ {
		if !sameIndexSet(g.out[i], wantOut[i]) {
			return errors.Wrapf(ErrAdjacencyMismatch, "node %d outgoing/incident list", i)
		}
		if g.directed && !sameIndexSet(g.in[i], wantIn[i]) {
			return errors.Wrapf(ErrAdjacencyMismatch, "node %d incoming list", i)
		}
	}

	return nil
}

// sameIndexSet compares two index lists as multisets.
func sameIndexSet(have, want []int) bool {
	if len(have) != len(want) {
		return false
	}
	a := append([]int(nil), have...)
	b := append([]int(nil), want...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
