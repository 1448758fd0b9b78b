// SPDX-License-Identifier: MIT
// Package: graphedit/builder
//
// impl_random.go - RandomSparse(n, p) and RandomEdges(n, m) constructors,
// plus the Random convenience factory used by tests and the CLI.
//
// Canonical models:
//   - RandomSparse: Erdos-Renyi-like; each admissible pair included with prob p.
//     Undirected: unordered pairs {i<j}; directed: ordered pairs (i,j).
//     Self-loops only when WithSelfLoops is set.
//   - RandomEdges: exactly m edges with endpoints drawn uniformly; parallel
//     edges may occur (multigraph), self-loops only with WithSelfLoops.
//
// Determinism:
//   - Stable node order (i asc), stable trial order, labels drawn in the same
//     stream ⇒ identical graphs for a fixed seed.

package builder

import "github.com/katalvlaran/graphedit/core"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomEdges  = "RandomEdges"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples n nodes with independent
// edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=1", n)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.6f not in [0,1]", p)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		base := addNodes(g, cfg, n)
		directed := g.Directed()
		var i, j, start int
		for i = 0; i < n; i++ {
			switch {
			case directed:
				start = 0
			case cfg.selfLoops:
				start = i
			default:
				start = i + 1
			}
			for j = start; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				u, v := base+i, base+j
				if _, err := g.AddEdge(u, v, cfg.edgeLabel(u, v)); err != nil {
					return builderErrorf(methodRandomSparse, err, "AddEdge(%d→%d)", u, v)
				}
			}
		}

		return nil
	}
}

// trial performs one Bernoulli(p) draw; p∈{0,1} never touches the rng.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}

// RandomEdges returns a Constructor that appends n nodes and exactly m edges
// with uniformly drawn endpoints.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 || m < 0 {
			return builderErrorf(methodRandomEdges, ErrTooFewVertices, "n=%d m=%d", n, m)
		}
		if m > 0 && (n == 0 || (n == 1 && !cfg.selfLoops)) {
			return builderErrorf(methodRandomEdges, ErrTooFewVertices, "cannot place %d edges on %d nodes", m, n)
		}
		if cfg.rng == nil && m > 0 {
			return builderErrorf(methodRandomEdges, ErrNeedRandSource, "m=%d", m)
		}

		base := addNodes(g, cfg, n)
		var u, v int
		for k := 0; k < m; k++ {
			u = cfg.rng.Intn(n)
			v = cfg.rng.Intn(n)
			for u == v && !cfg.selfLoops {
				v = cfg.rng.Intn(n)
			}
			if _, err := g.AddEdge(base+u, base+v, cfg.edgeLabel(base+u, base+v)); err != nil {
				return builderErrorf(methodRandomEdges, err, "AddEdge(%d→%d)", base+u, base+v)
			}
		}

		return nil
	}
}

// Random builds a named random multigraph with n nodes and m edges from seed.
// Extra options are applied after WithSeed (e.g. alphabets, self-loops).
//
// Errors: see RandomEdges.
func Random(name string, n, m int, directed bool, seed int64, opts ...BuilderOption) (*core.Graph, error) {
	bopts := append([]BuilderOption{WithSeed(seed)}, opts...)

	return BuildGraph(
		[]core.GraphOption{core.WithName(name), core.WithDirected(directed)},
		bopts,
		RandomEdges(n, m),
	)
}
