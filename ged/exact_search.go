// File: exact_search.go
// Role: The A* engine behind Exact: prefetch, heuristic, expansion, open list.
// Determinism:
//   - The open list orders by (f asc, depth desc, seq asc); children are
//     generated in a fixed candidate order, so runs are reproducible.
// Concurrency:
//   - One searchEngine per Similarity call; nothing is shared.

package ged

import (
	"sort"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
	"github.com/katalvlaran/graphedit/iso"
)

// unassigned marks a source node not yet decided in the scratch mapping.
const unassigned = -2

// searchState is one arena entry. States refer to their parent by index.
type searchState struct {
	parent   int
	target   int // image of order[depth-1]: a target index or Deleted
	depth    int
	used     int // targets in use
	covered  int // target edges with both endpoints in use
	g, f     float64
	terminal bool
}

// queueItem is what the priority queue orders.
type queueItem struct {
	idx   int
	f     float64
	depth int
	seq   int
}

func byPriority(x, y interface{}) int {
	a, b := x.(queueItem), y.(queueItem)
	switch {
	case a.f < b.f:
		return -1
	case a.f > b.f:
		return 1
	case a.depth > b.depth:
		return -1
	case a.depth < b.depth:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}

	return 0
}

// searchEngine holds all prefetched data and search state.
type searchEngine struct {
	a, b     *graphData
	model    costmodel.Model
	opts     Options
	n1, n2   int
	m2       int
	directed bool

	// dense data: multA[u*n1+v], multB[t*n2+s]
	multA, multB []int
	labA, labB   []int // label codes
	nLabels      int
	degA, degB   []int

	order   []int // source processing order
	remainA []int // remainA[k] = source edges touching order[k:]

	delN, addN, mismatch float64
	relabelOn            bool

	matcher *iso.Matcher

	arena []searchState
	open  *priorityqueue.Queue
	seq   int

	hasUB     bool
	ub        float64
	ubMapping []int

	stats SearchStats

	// scratch, rebuilt per expansion
	img        []int
	usedT      []bool
	cntS, cntT []int
}

func newSearchEngine(a, b *graphData, model costmodel.Model, opts Options) *searchEngine {
	e := &searchEngine{
		a: a, b: b,
		model:     model,
		opts:      opts,
		n1:        a.n,
		n2:        b.n,
		m2:        b.m,
		directed:  a.directed,
		multA:     a.denseMult(),
		multB:     b.denseMult(),
		degA:      make([]int, a.n),
		degB:      make([]int, b.n),
		delN:      model.Cost(edit.DeleteNode),
		addN:      model.Cost(edit.AddNode),
		mismatch:  model.MismatchCost(),
		relabelOn: model.Relabel(),
		open:      priorityqueue.NewWith(byPriority),
		img:       make([]int, a.n),
		usedT:     make([]bool, b.n),
	}
	for u := range e.degA {
		e.degA[u] = a.degree(u)
	}
	for t := range e.degB {
		e.degB[t] = b.degree(t)
	}
	e.encodeLabels()
	e.buildOrder()

	return e
}

// encodeLabels maps labels of both graphs to shared small integers.
func (e *searchEngine) encodeLabels() {
	codes := make(map[string]int)
	code := func(l string) int {
		c, ok := codes[l]
		if !ok {
			c = len(codes)
			codes[l] = c
		}

		return c
	}
	e.labA = make([]int, e.n1)
	e.labB = make([]int, e.n2)
	for u, l := range e.a.labels {
		e.labA[u] = code(l)
	}
	for t, l := range e.b.labels {
		e.labB[t] = code(l)
	}
	e.nLabels = len(codes)
	e.cntS = make([]int, e.nLabels)
	e.cntT = make([]int, e.nLabels)
}

// buildOrder fixes the source processing order and the unresolved-edge suffix counts.
func (e *searchEngine) buildOrder() {
	e.order = identityMapping(e.n1)
	if e.opts.DegreeOrdering {
		sort.SliceStable(e.order, func(i, j int) bool {
			return e.degA[e.order[i]] > e.degA[e.order[j]]
		})
	}
	pos := make([]int, e.n1)
	for k, u := range e.order {
		pos[u] = k
	}
	resolvedAt := make([]int, e.n1+1)
	for _, ed := range e.a.edges {
		resolvedAt[max(pos[ed.From], pos[ed.To])]++
	}
	e.remainA = make([]int, e.n1+1)
	for k := e.n1 - 1; k >= 0; k-- {
		e.remainA[k] = e.remainA[k+1] + resolvedAt[k]
	}
}

func (e *searchEngine) attachMatcher(g1, g2 *core.Graph) {
	e.matcher = iso.NewMatcher(g1, g2, iso.WithLabels(e.relabelOn))
}

// seedUpperBound runs the bipartite approximation as the incumbent.
func (e *searchEngine) seedUpperBound() error {
	mapping, list, err := symmetricMapping(e.a, e.b, e.model)
	if err != nil {
		return err
	}
	e.ubMapping = mapping
	e.ub = list.Cost()
	e.hasUB = true
	e.stats.UpperBound = e.ub

	return nil
}

// heuristic is the admissible remaining-cost bound.
func (e *searchEngine) heuristic(r1, r2, common, e1r, e2r int) float64 {
	h := e.model.NodeDiff(r1, r2)
	if e.relabelOn {
		if mm := min(r1, r2) - common; mm > 0 {
			h += float64(mm) * e.mismatch
		}
	}

	return h + e.model.EdgeDiff(e1r, e2r)
}

// push appends a state unless it is dominated by the incumbent.
func (e *searchEngine) push(s searchState) {
	if e.hasUB && s.f > e.ub+e.opts.Epsilon {
		e.stats.Pruned++
		return
	}
	idx := len(e.arena)
	e.arena = append(e.arena, s)
	e.open.Enqueue(queueItem{idx: idx, f: s.f, depth: s.depth, seq: e.seq})
	e.seq++
	e.stats.Pushed++
}

// run searches and returns the optimal mapping.
func (e *searchEngine) run() []int {
	root := searchState{parent: -1, target: unassigned}
	common := 0
	if e.relabelOn {
		common = e.rootCommon()
	}
	root.f = e.heuristic(e.n1, e.n2, common, e.a.m, e.m2)
	if e.n1 == 0 {
		root.g, root.terminal = root.f, true
	}
	e.push(root)

	for !e.open.Empty() {
		v, _ := e.open.Dequeue()
		idx := v.(queueItem).idx
		s := e.arena[idx]
		e.restore(idx)
		if s.terminal {
			return e.currentMapping()
		}
		e.stats.Expanded++
		if e.matcher != nil && s.f == s.g {
			if full, ok := e.shortCircuit(); ok {
				e.stats.ShortCircuits++
				return full
			}
		}
		e.expand(idx)
	}

	// Only reachable if rounding pruned every path; the incumbent is then optimal.
	return e.ubMapping
}

func (e *searchEngine) rootCommon() int {
	for u := 0; u < e.n1; u++ {
		e.cntS[e.labA[u]]++
	}
	for t := 0; t < e.n2; t++ {
		e.cntT[e.labB[t]]++
	}
	common := 0
	for l := 0; l < e.nLabels; l++ {
		common += min(e.cntS[l], e.cntT[l])
		e.cntS[l], e.cntT[l] = 0, 0
	}

	return common
}

// restore rebuilds img/usedT for the state at idx by walking its parents.
func (e *searchEngine) restore(idx int) {
	for u := range e.img {
		e.img[u] = unassigned
	}
	for t := range e.usedT {
		e.usedT[t] = false
	}
	for st := idx; e.arena[st].depth > 0; st = e.arena[st].parent {
		s := &e.arena[st]
		e.img[e.order[s.depth-1]] = s.target
		if s.target >= 0 {
			e.usedT[s.target] = true
		}
	}
}

func (e *searchEngine) currentMapping() []int {
	return append([]int(nil), e.img...)
}

// shortCircuit tries to complete the restored partial mapping exactly.
func (e *searchEngine) shortCircuit() ([]int, bool) {
	partial := make([]int, e.n1)
	for u, t := range e.img {
		switch t {
		case unassigned:
			partial[u] = iso.Free
		case Deleted:
			partial[u] = iso.Deleted
		default:
			partial[u] = t
		}
	}
	full, ok := e.matcher.Extend(partial)
	if !ok {
		return nil, false
	}
	for u, t := range full {
		if t == iso.Deleted {
			full[u] = Deleted
		}
	}

	return full, true
}

// pairCost charges every pair between u (mapped to t, or Deleted) and the
// already decided source nodes, u itself included for self-loops.
func (e *searchEngine) pairCost(u, t, k int) float64 {
	n1, n2 := e.n1, e.n2
	bm := func(x, y int) int {
		if x < 0 || y < 0 {
			return 0
		}

		return e.multB[x*n2+y]
	}
	c := e.model.EdgeDiff(e.multA[u*n1+u], bm(t, t))
	for _, w := range e.order[:k] {
		tw := e.img[w]
		c += e.model.EdgeDiff(e.multA[u*n1+w], bm(t, tw))
		if e.directed {
			c += e.model.EdgeDiff(e.multA[w*n1+u], bm(tw, t))
		}
	}

	return c
}

// newlyCovered counts target edges between t and the used targets (loops included).
func (e *searchEngine) newlyCovered(t int) int {
	n2 := e.n2
	c := e.multB[t*n2+t]
	for s, used := range e.usedT {
		if !used {
			continue
		}
		c += e.multB[t*n2+s]
		if e.directed {
			c += e.multB[s*n2+t]
		}
	}

	return c
}

// candidates lists unused targets in trial order for source u.
func (e *searchEngine) candidates(u int) []int {
	out := make([]int, 0, e.n2)
	for t, used := range e.usedT {
		if !used {
			out = append(out, t)
		}
	}
	if e.opts.DegreeOrdering {
		du := e.degA[u]
		sort.SliceStable(out, func(i, j int) bool {
			return absInt(du-e.degB[out[i]]) < absInt(du-e.degB[out[j]])
		})
	}

	return out
}

// expand pushes every child of the restored state at idx.
func (e *searchEngine) expand(idx int) {
	s := e.arena[idx]
	k := s.depth
	u := e.order[k]
	r1 := e.n1 - k - 1
	e1r := e.remainA[k+1]

	common := 0
	if e.relabelOn {
		for _, w := range e.order[k+1:] {
			e.cntS[e.labA[w]]++
		}
		for t, used := range e.usedT {
			if !used {
				e.cntT[e.labB[t]]++
			}
		}
		for l := 0; l < e.nLabels; l++ {
			common += min(e.cntS[l], e.cntT[l])
		}
	}

	for _, t := range e.candidates(u) {
		child := searchState{parent: idx, target: t, depth: k + 1, used: s.used + 1}
		child.g = s.g + e.model.NodeSubstitution(e.a.labels[u], e.b.labels[t]) + e.pairCost(u, t, k)
		child.covered = s.covered + e.newlyCovered(t)
		c := common
		if e.relabelOn && e.cntT[e.labB[t]] <= e.cntS[e.labB[t]] {
			c--
		}
		e.finishChild(&child, r1, e.n2-child.used, c, e1r)
	}

	del := searchState{parent: idx, target: Deleted, depth: k + 1, used: s.used, covered: s.covered}
	del.g = s.g + e.delN + e.pairCost(u, Deleted, k)
	e.finishChild(&del, r1, e.n2-del.used, common, e1r)

	if e.relabelOn {
		for l := 0; l < e.nLabels; l++ {
			e.cntS[l], e.cntT[l] = 0, 0
		}
	}
}

func (e *searchEngine) finishChild(c *searchState, r1, r2, common, e1r int) {
	c.f = c.g + e.heuristic(r1, r2, common, e1r, e.m2-c.covered)
	if c.depth == e.n1 {
		// h is exactly the completion cost once every source node is decided
		c.g, c.terminal = c.f, true
	}
	e.push(*c)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
