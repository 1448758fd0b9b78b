// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology counts, determinism under a fixed seed
// and sentinel errors on invalid parameters.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/builder"
	"github.com/katalvlaran/graphedit/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		directed bool
		ctor     builder.Constructor
		wantV    int
		wantE    int
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5},
		{name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6},
		{name: "Complete(4) directed", directed: true, ctor: builder.Complete(4), wantV: 4, wantE: 12},
		{name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10},
		{name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0},
		{name: "RandomSparse(3,1) directed", directed: true, ctor: builder.RandomSparse(3, 1), wantV: 3, wantE: 6},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(tc.directed)}, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.NodeCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			require.NoError(t, g.CheckConsistency())
		})
	}
}

func TestBuilders_ComposeDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(2), builder.Cycle(3))
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
	// cycle edges are offset by the path's two nodes
	require.Equal(t, 1, g.Multiplicity(4, 2))
	require.Equal(t, 0, g.Multiplicity(1, 2))
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomEdges no rng", builder.RandomEdges(3, 2), builder.ErrNeedRandSource},
		{"RandomEdges single node", builder.RandomEdges(1, 2), builder.ErrTooFewVertices},
		{"Structure bad edge", builder.Structure([]string{"a"}, []builder.EdgeSpec{builder.E(0, 1)}), builder.ErrBadEdgeSpec},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithNodeAlphabet("a", "b", "c"), builder.WithEdgeAlphabet("x", "y")}
	g1, err := builder.Random("r", 8, 12, true, 42, opts...)
	require.NoError(t, err)
	g2, err := builder.Random("r", 8, 12, true, 42, opts...)
	require.NoError(t, err)
	require.Equal(t, g1.String(), g2.String())
	require.Equal(t, 8, g1.NodeCount())
	require.Equal(t, 12, g1.EdgeCount())
	require.Zero(t, g1.Stats().SelfLoops)

	for _, l := range g1.Labels() {
		require.Contains(t, []string{"a", "b", "c"}, l)
	}

	g3, err := builder.Random("r", 8, 12, true, 43, opts...)
	require.NoError(t, err)
	require.NotEqual(t, g1.String(), g3.String())
}

func TestRandom_SelfLoopsAndEmpty(t *testing.T) {
	g, err := builder.Random("loops", 1, 3, false, 7, builder.WithSelfLoops())
	require.NoError(t, err)
	require.Equal(t, 3, g.Stats().SelfLoops)

	empty, err := builder.Random("empty", 0, 0, false, 7)
	require.NoError(t, err)
	require.Zero(t, empty.NodeCount())
}

func TestStructure_LabelsAndSchemes(t *testing.T) {
	g := builder.MustStructure("s", true, []string{"node 0", "node 1"}, []builder.EdgeSpec{{From: 1, To: 0, Label: "e"}})
	require.Equal(t, "s", g.Name())
	require.True(t, g.Directed())
	require.Equal(t, []string{"node 0", "node 1"}, g.Labels())
	require.True(t, g.HasEdge(1, 0))

	named, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithLabelScheme(func(i int) string { return string(rune('A' + i)) }),
			builder.WithEdgeLabelScheme(func(u, v int) string { return "e" }),
		},
		builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, named.Labels())
	e, err := named.Edge(1)
	require.NoError(t, err)
	require.Equal(t, "e", e.Label)

	require.Panics(t, func() { builder.WithLabelScheme(nil) })
	require.Panics(t, func() { builder.WithNodeAlphabet() })
}
