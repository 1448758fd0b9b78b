package ged

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
)

// Simple pairs nodes rank by rank after sorting both graphs by degree
// (descending, index ascending). Surplus source nodes are deleted and surplus
// target nodes added; edge edits follow from the pairing.
//
// With Options.Randomize the nodes are shuffled with Options.Seed before a
// stable degree sort, so equal-degree ties break randomly but reproducibly.
//
// The result is an upper bound on the exact distance and its edit list is
// applicable. Complexity: O(V log V + E).
type Simple struct {
	base
}

// NewSimple validates costs (RELABEL_NODE iff opts.Relabel).
func NewSimple(costs costmodel.CostMap, opts Options) (*Simple, error) {
	b, err := newBase("simple", costs, opts)
	if err != nil {
		return nil, err
	}

	return &Simple{base: b}, nil
}

// Similarity implements Engine.
func (s *Simple) Similarity(g1, g2 *core.Graph) (float64, error) {
	a, b, err := s.prepare(g1, g2)
	if err != nil {
		return 0, err
	}
	// one stream per graph, so equal graphs get equal orders
	oa := s.order(a, rngFromSeed(s.opts.Seed))
	ob := s.order(b, rngFromSeed(s.opts.Seed))

	mapping := make([]int, a.n)
	for i, u := range oa {
		if i < len(ob) {
			mapping[u] = ob[i]
		} else {
			mapping[u] = Deleted
		}
	}
	list := buildEditList(a, b, mapping, s.model)
	s.log.WithField("cost", list.Cost()).Debug("simple pairing done")

	return s.finish(list), nil
}

// order returns node indices sorted by degree descending.
func (s *Simple) order(d *graphData, rng *rand.Rand) []int {
	idx := make([]int, d.n)
	for i := range idx {
		idx[i] = i
	}
	if s.opts.Randomize {
		shuffleIntsInPlace(idx, rng)
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return d.degree(idx[i]) > d.degree(idx[j])
	})

	return idx
}
