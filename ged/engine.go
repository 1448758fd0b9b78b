// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: The Engine contract, the shared engine base and the name-keyed factory.

package ged

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
)

// Engine computes a graph edit distance and keeps the witness of its last run.
//
// Contract for every implementation:
//   - EditList().Cost() == the value Similarity returned last.
//   - Similarity(g, g) == 0 for mapping-based engines.
//   - An instance is not safe for concurrent Similarity calls.
type Engine interface {
	Similarity(g1, g2 *core.Graph) (float64, error)
	EditList() *edit.List
}

// Algorithm names an engine for New.
type Algorithm int

const (
	AlgoExact Algorithm = iota
	AlgoSimple
	AlgoBipartite
	AlgoHausdorff
	AlgoLowerBound
)

var algoNames = map[Algorithm]string{
	AlgoExact:      "exact",
	AlgoSimple:     "simple",
	AlgoBipartite:  "bipartite",
	AlgoHausdorff:  "hausdorff",
	AlgoLowerBound: "lowerbound",
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoExact, AlgoSimple, AlgoBipartite, AlgoHausdorff, AlgoLowerBound}
}

func (a Algorithm) String() string {
	if s, ok := algoNames[a]; ok {
		return s
	}

	return "unknown"
}

// ParseAlgorithm accepts the names printed by String, case-insensitively;
// "lower-bound" and "lower_bound" are accepted for AlgoLowerBound.
func ParseAlgorithm(s string) (Algorithm, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "").Replace(norm)
	for _, a := range Algorithms() {
		if algoNames[a] == norm {
			return a, nil
		}
	}

	return -1, errors.Wrapf(ErrUnknownAlgorithm, "%q", s)
}

// New builds the engine named by algo.
func New(algo Algorithm, costs costmodel.CostMap, opts Options) (Engine, error) {
	switch algo {
	case AlgoExact:
		return NewExact(costs, opts)
	case AlgoSimple:
		return NewSimple(costs, opts)
	case AlgoBipartite:
		return NewBipartite(costs, opts)
	case AlgoHausdorff:
		return NewHausdorff(costs, opts)
	case AlgoLowerBound:
		return NewLowerBound(costs, opts)
	}

	return nil, errors.Wrapf(ErrUnknownAlgorithm, "%d", int(algo))
}

// base carries what every engine holds between calls.
type base struct {
	model costmodel.Model
	opts  Options
	log   logrus.FieldLogger
	last  *edit.List
}

func newBase(name string, costs costmodel.CostMap, opts Options) (base, error) {
	if err := opts.validate(); err != nil {
		return base{}, err
	}
	model, err := costmodel.New(costs, opts.requirements())
	if err != nil {
		return base{}, errors.Wrapf(err, "ged: %s", name)
	}

	return base{model: model, opts: opts, log: opts.logger(name)}, nil
}

// EditList returns a copy of the witness from the last Similarity call
// (an empty list before the first call).
func (b *base) EditList() *edit.List {
	if b.last == nil {
		return edit.NewList()
	}

	return edit.NewList(b.last.Operations()...)
}

// finish stores list as the witness and returns its cost as the distance.
func (b *base) finish(list *edit.List) float64 {
	b.last = list

	return list.Cost()
}

// prepare validates the pair and snapshots both graphs.
func (b *base) prepare(g1, g2 *core.Graph) (*graphData, *graphData, error) {
	b.last = nil
	if err := checkPair(g1, g2); err != nil {
		return nil, nil, err
	}

	return snapshot(g1), snapshot(g2), nil
}
