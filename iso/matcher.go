// File: matcher.go
// Role: VF2-style backtracking over node bijections, with partial-mapping extension.
// Determinism:
//   - Source nodes are visited in a fixed connectivity-first order and
//     candidates in ascending target index, so the returned mapping is stable.
// Concurrency:
//   - A Matcher is read-only after NewMatcher; Extend allocates its own state
//     and may be called from several goroutines.

package iso

import (
	"sort"

	"github.com/katalvlaran/graphedit/core"
)

const (
	// Free marks a source node the matcher must assign.
	Free = -1

	// Deleted marks a source node that maps to nothing. A free node adjacent
	// to a Deleted one can never match exactly.
	Deleted = -2
)

// Matcher holds prefetched snapshots of a source and a target graph.
type Matcher struct {
	cfg  config
	a, b *snapshot
}

// NewMatcher snapshots g1 (source) and g2 (target). Both must be non-nil.
//
// Complexity: O(V + E log E).
func NewMatcher(g1, g2 *core.Graph, opts ...Option) *Matcher {
	cfg := newConfig(opts)

	return &Matcher{
		cfg: cfg,
		a:   newSnapshot(g1, cfg.edgeLabels),
		b:   newSnapshot(g2, cfg.edgeLabels),
	}
}

// search is the per-call backtracking state.
type search struct {
	m     *Matcher
	img   []int // source -> target, Free or Deleted
	pre   []int // target -> source, or Free
	order []int // free source nodes in visiting order
}

// Extend completes partial into a mapping under which every node pair that
// involves at least one free source node matches exactly: equal multiplicity
// in both directions, equal node labels and edge-label multisets when those
// options are set. Pairs between two already-decided source nodes are not
// inspected.
//
// partial has one entry per source node: a target index, Free, or Deleted.
// Target indices must be distinct. Free source nodes are matched onto the
// target nodes partial leaves unused, so the two sets must have equal size.
//
// Returns the completed mapping (Deleted entries kept) and true on success.
//
// Complexity: exponential in the number of free nodes in the worst case;
// degree, self-loop and label signatures prune most candidates.
func (m *Matcher) Extend(partial []int) ([]int, bool) {
	a, b := m.a, m.b
	if a.directed != b.directed || len(partial) != a.n {
		return nil, false
	}

	s := &search{
		m:   m,
		img: append([]int(nil), partial...),
		pre: make([]int, b.n),
	}
	for t := range s.pre {
		s.pre[t] = Free
	}
	var free []int
	for u, t := range partial {
		switch {
		case t == Free:
			free = append(free, u)
		case t == Deleted:
		case t < 0 || t >= b.n || s.pre[t] != Free:
			return nil, false
		default:
			s.pre[t] = u
		}
	}
	var unused []int
	for t, u := range s.pre {
		if u == Free {
			unused = append(unused, t)
		}
	}
	if len(free) != len(unused) {
		return nil, false
	}
	if !m.signaturesAgree(free, unused) {
		return nil, false
	}
	for _, u := range free {
		for _, z := range a.nbrs[u] {
			if s.img[z] == Deleted {
				return nil, false
			}
		}
	}

	s.order = m.visitOrder(free)
	if !s.match(0, unused) {
		return nil, false
	}

	return s.img, true
}

// signature is the per-node invariant compared before backtracking.
type signature struct {
	out, in, loops int
	label          string
}

func (m *Matcher) sig(s *snapshot, u int) signature {
	sg := signature{out: s.out[u], in: s.in[u], loops: s.loops[u]}
	if m.cfg.nodeLabels {
		sg.label = s.labels[u]
	}

	return sg
}

func lessSig(x, y signature) bool {
	if x.out != y.out {
		return x.out < y.out
	}
	if x.in != y.in {
		return x.in < y.in
	}
	if x.loops != y.loops {
		return x.loops < y.loops
	}

	return x.label < y.label
}

// signaturesAgree compares the sorted signature multisets of both sides.
func (m *Matcher) signaturesAgree(free, unused []int) bool {
	x := make([]signature, len(free))
	y := make([]signature, len(unused))
	for i, u := range free {
		x[i] = m.sig(m.a, u)
	}
	for i, t := range unused {
		y[i] = m.sig(m.b, t)
	}
	sort.Slice(x, func(i, j int) bool { return lessSig(x[i], x[j]) })
	sort.Slice(y, func(i, j int) bool { return lessSig(y[i], y[j]) })
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// visitOrder picks, at each step, the free node with most neighbors already
// placed (decided or earlier in the order), then highest degree, then lowest index.
func (m *Matcher) visitOrder(free []int) []int {
	a := m.a
	placed := make(map[int]bool, len(free))
	isFree := make(map[int]bool, len(free))
	for _, u := range free {
		isFree[u] = true
	}
	order := make([]int, 0, len(free))
	for len(order) < len(free) {
		best, bestConn, bestDeg := -1, -1, -1
		for _, u := range free {
			if placed[u] {
				continue
			}
			conn := 0
			for _, z := range a.nbrs[u] {
				if !isFree[z] || placed[z] {
					conn++
				}
			}
			deg := a.degree(u)
			if conn > bestConn || (conn == bestConn && deg > bestDeg) {
				best, bestConn, bestDeg = u, conn, deg
			}
		}
		placed[best] = true
		order = append(order, best)
	}

	return order
}

func (s *search) match(depth int, unused []int) bool {
	if depth == len(s.order) {
		return true
	}
	u := s.order[depth]
	su := s.m.sig(s.m.a, u)
	for _, t := range unused {
		if s.pre[t] != Free || s.m.sig(s.m.b, t) != su || !s.feasible(u, t) {
			continue
		}
		s.img[u], s.pre[t] = t, u
		if s.match(depth+1, unused) {
			return true
		}
		s.img[u], s.pre[t] = Free, Free
	}

	return false
}

// feasible checks u->t against every already-assigned neighbor on both sides.
func (s *search) feasible(u, t int) bool {
	a, b := s.m.a, s.m.b
	if !s.pairMatches(u, u, t, t) {
		return false
	}
	for _, z := range a.nbrs[u] {
		tz := s.img[z]
		if tz == Free {
			continue
		}
		if tz == Deleted || !s.pairMatches(u, z, t, tz) {
			return false
		}
	}
	for _, tz := range b.nbrs[t] {
		z := s.pre[tz]
		if z == Free {
			continue
		}
		if !s.pairMatches(u, z, t, tz) {
			return false
		}
	}

	return true
}

// pairMatches compares (u,z) in the source with (t,tz) in the target, both
// directions when directed.
func (s *search) pairMatches(u, z, t, tz int) bool {
	a, b := s.m.a, s.m.b
	if a.mult(u, z) != b.mult(t, tz) {
		return false
	}
	if a.directed && a.mult(z, u) != b.mult(tz, t) {
		return false
	}
	if !s.m.cfg.edgeLabels {
		return true
	}
	if !sameStrings(a.edgeLabels(u, z), b.edgeLabels(t, tz)) {
		return false
	}

	return !a.directed || sameStrings(a.edgeLabels(z, u), b.edgeLabels(tz, t))
}

func sameStrings(x, y []string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}
